package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
)

// FieldProblem - одна причина отказа в валидации
type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError возвращается, если данные объекта не проходят проверку.
// Хранилище при этом не трогается.
type ValidationError struct {
	Problems []FieldProblem
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Problems: []FieldProblem{{Field: field, Message: message}}}
}

func (e *ValidationError) Add(field, message string) {
	e.Problems = append(e.Problems, FieldProblem{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Field, p.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StoreError - сбой хранилища (соединение, запрос, декодирование)
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsValidationError - удобная проверка через errors.As
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
