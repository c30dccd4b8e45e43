package validator

import (
	"os"

	"github.com/golangid/wedding-collab/candihelper"
)

// Validator instance
type Validator struct {
	*JSONSchemaValidator
	*StructValidator
}

// NewValidator constructor, using jsonschema & struct validator (github.com/go-playground/validator),
// jsonschema source file load from WORKDIR environment + "api/jsonschema"
func NewValidator() *Validator {
	return &Validator{
		JSONSchemaValidator: NewJSONSchemaValidator(os.Getenv(candihelper.WORKDIR) + "api/jsonschema"),
		StructValidator:     NewStructValidator(),
	}
}
