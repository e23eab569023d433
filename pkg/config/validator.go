package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists the schema violations of a configuration document
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration is not valid: %s", strings.Join(e.Errors, "; "))
}

// Validate validates a configuration document against the JSON schema
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(Schema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, desc.String())
		}
		return verr
	}

	return nil
}
