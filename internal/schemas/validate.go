// Package schemas provides JSON Schema validation for resume
// documents entering the system (configuration files and API bodies).
// LLM output is deliberately not schema-validated; the tailoring
// engine recovers from malformed replies with fallbacks instead.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_document.schema.json
var resumeDocumentSchema string

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema violations for one document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "resume document validation failed: " + strings.Join(parts, "; ")
}

// ValidateResumeDocument checks a JSON-encoded resume document
// against the embedded schema. Returns *ValidationError on schema
// violations, or a generic error when the document is not valid JSON.
func ValidateResumeDocument(doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeDocumentSchema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate resume document: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, re := range result.Errors() {
			verr.Errors = append(verr.Errors, FieldError{
				Field:   re.Field(),
				Message: re.Description(),
			})
		}
		return verr
	}
	return nil
}
