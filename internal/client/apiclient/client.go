package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

// DefaultBaseURL - адрес API по умолчанию
const DefaultBaseURL = "http://localhost:8080/api"

// Client - HTTP-клиент сервиса объявлений
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WithHTTPClient подменяет http.Client (для тестов)
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

func (c *Client) ListProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	endpoint := c.baseURL + "/properties"
	if q := encodeFilters(filters); q != "" {
		endpoint += "?" + q
	}

	var dtos []propertyDTO
	if err := c.do(ctx, "ListProperties", http.MethodGet, endpoint, nil, &dtos); err != nil {
		return nil, err
	}

	properties := make([]domain.Property, len(dtos))
	for i, dto := range dtos {
		properties[i] = dto.toDomain()
	}
	return properties, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	var dto propertyDTO
	if err := c.do(ctx, "GetProperty", http.MethodGet, c.propertyURL(id), nil, &dto); err != nil {
		return nil, err
	}
	p := dto.toDomain()
	return &p, nil
}

func (c *Client) CreateProperty(ctx context.Context, draft domain.PropertyPatch) (*domain.Property, error) {
	var dto propertyDTO
	if err := c.do(ctx, "CreateProperty", http.MethodPost, c.baseURL+"/properties", toInputDTO(draft), &dto); err != nil {
		return nil, err
	}
	p := dto.toDomain()
	return &p, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	var dto propertyDTO
	if err := c.do(ctx, "UpdateProperty", http.MethodPut, c.propertyURL(id), toInputDTO(patch), &dto); err != nil {
		return nil, err
	}
	p := dto.toDomain()
	return &p, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, "DeleteProperty", http.MethodDelete, c.propertyURL(id), nil, nil)
}

func (c *Client) propertyURL(id string) string {
	return c.baseURL + "/properties/" + url.PathEscape(id)
}

// do выполняет запрос и декодирует ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, method, httpMethod, endpoint string, in interface{}, out interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingAPIClient",
		"method":    method,
	})

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(contextkeys.TraceIDHeader, traceID)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("Request to listing service failed", port.Fields{"error": err.Error()})
		return fmt.Errorf("request to listing service failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp)
		logger.Debug("Listing service returned an error", port.Fields{"status_code": resp.StatusCode})
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var dto errorResponseDTO
	if err := json.Unmarshal(raw, &dto); err == nil && dto.Message != "" {
		apiErr.Message = dto.Message
		apiErr.Details = dto.Details
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}

// encodeFilters кладет в строку запроса только заданные поля
func encodeFilters(f domain.PropertyFilters) string {
	q := url.Values{}
	if f.Type != nil {
		q.Set("type", string(*f.Type))
	}
	if f.Status != nil {
		q.Set("status", string(*f.Status))
	}
	if f.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Bedrooms != nil {
		q.Set("bedrooms", strconv.Itoa(*f.Bedrooms))
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	return q.Encode()
}

// AsAPIError - errors.As для *APIError
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound сообщает, что сервис ответил 404
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsNotFound()
}
