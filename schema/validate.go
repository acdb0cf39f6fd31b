// schema/validate.go
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// reportSchemaJSON is the canonical JSON Schema for the interchange format.
// Report files produced by any implementation must validate against it.
//
//go:embed report_schema.json
var reportSchemaJSON []byte

// ValidateReport checks that data is a syntactically valid report document
// conforming to the shared schema: exact field names, required metadata,
// and no unknown keys. It returns nil for conforming documents and an
// error listing every violation otherwise.
func ValidateReport(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(reportSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema: validate report: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("schema: report does not conform: %s", strings.Join(problems, "; "))
}
