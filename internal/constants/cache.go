package constants

const (
	CacheKeyPropertyListPrefix = "properties:list"
	CacheKeyPropertyListGen    = "properties:list:gen"
)
