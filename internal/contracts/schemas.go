package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const schemaBaseURL = "https://property-listing.local/schemas/"

// Имена контрактов для тел запросов
const (
	PropertyCreateV1 = "PropertyCreate/1.0.0"
	PropertyUpdateV1 = "PropertyUpdate/1.0.0"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	// Сначала добавляем все схемы как ресурсы, чтобы работали $ref между файлами
	paths, err := fs.Glob(schemasFS, "schemas/*.json")
	if err != nil {
		log.Fatalf("error listing embedded schemas: %v", err)
	}
	for _, path := range paths {
		data, err := schemasFS.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read schema %s: %v", path, err)
		}
		if err := compiler.AddResource(schemaURL(path), bytes.NewReader(data)); err != nil {
			log.Fatalf("failed to add schema resource %s: %v", path, err)
		}
	}

	for _, path := range paths {
		schema, err := compiler.Compile(schemaURL(path))
		if err != nil {
			log.Fatalf("could not compile schema %s: %v", path, err)
		}
		if key := generateKeyFromPath(path); key != "" {
			compiledSchemas[key] = schema
		}
	}
}

func schemaURL(path string) string {
	return schemaBaseURL + strings.TrimPrefix(path, "schemas/")
}

// generateKeyFromPath: "schemas/property-create.v1.json" -> "PropertyCreate/1.0.0".
// Файлы без версии в имени (общие определения) ключа не получают.
func generateKeyFromPath(path string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
	parts := strings.Split(name, ".v")
	if len(parts) != 2 || strings.HasSuffix(parts[0], "-fields") {
		return ""
	}

	caser := cases.Title(language.English)
	var nameBuilder strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		nameBuilder.WriteString(caser.String(p))
	}

	return fmt.Sprintf("%s/%s.0.0", nameBuilder.String(), parts[1])
}

// ValidatePayload проверяет тело запроса по контракту.
// Нарушения контракта возвращаются как *domain.ValidationError.
func ValidatePayload(contract string, body []byte) error {
	schema, ok := compiledSchemas[contract]
	if !ok {
		return fmt.Errorf("schema for contract '%s' not found", contract)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return domain.NewValidationError("body", "must be a valid JSON document")
	}

	if err := schema.Validate(v); err != nil {
		var schemaErr *jsonschema.ValidationError
		if errors.As(err, &schemaErr) {
			return toDomainValidationError(schemaErr)
		}
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

func toDomainValidationError(schemaErr *jsonschema.ValidationError) *domain.ValidationError {
	vErr := &domain.ValidationError{}
	collectLeaves(schemaErr, vErr)
	if len(vErr.Problems) == 0 {
		vErr.Add("body", schemaErr.Message)
	}
	return vErr
}

func collectLeaves(e *jsonschema.ValidationError, vErr *domain.ValidationError) {
	if len(e.Causes) == 0 {
		field := strings.TrimPrefix(e.InstanceLocation, "/")
		if field == "" {
			field = "body"
		}
		vErr.Add(field, e.Message)
		return
	}
	for _, cause := range e.Causes {
		collectLeaves(cause, vErr)
	}
}
