package port

// Fields - структурированные поля записи лога
type Fields map[string]interface{}

// Имена полей, по которым записи API и CLI связываются между собой
const (
	FieldTraceID    = "trace_id"
	FieldUseCase    = "use_case"
	FieldPropertyID = "property_id"
)

// LoggerPort - логгер, которым пользуются use case'ы объявлений, HTTP-слой и CLI.
// Куда уходят записи (консоль, Fluent Bit), решает сборка приложения.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields возвращает логгер, который добавляет fields к каждой записи
	WithFields(fields Fields) LoggerPort
}
