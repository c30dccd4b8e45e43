package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golangid/gojsonschema"

	"github.com/golangid/wedding-collab/candihelper"
)

var notShowErrorListType = map[string]bool{
	"condition_else": true, "condition_then": true,
}

// JSONSchemaValidator validator
type JSONSchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewJSONSchemaValidator constructor, load all json schema file in schemaRootPath,
// schema id is taken from "$id" or relative file path without extension
func NewJSONSchemaValidator(schemaRootPath string) *JSONSchemaValidator {
	v := &JSONSchemaValidator{schemas: make(map[string]*gojsonschema.Schema)}
	if err := v.loadJSONSchemaLocalFiles(schemaRootPath); err != nil {
		log.Println(candihelper.StringYellow("Validator: warning, failed load json schema in path " + schemaRootPath + ": " + err.Error()))
	}
	return v
}

func (v *JSONSchemaValidator) loadJSONSchemaLocalFiles(path string) error {
	return filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".json") {
			return nil
		}

		fileName := info.Name()
		s, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("%s: %v", fileName, err)
		}

		var data map[string]interface{}
		if err := json.Unmarshal(s, &data); err != nil {
			return fmt.Errorf("%s: %v", fileName, err)
		}
		id, ok := data["$id"].(string)
		if !ok {
			id = strings.Trim(strings.TrimSuffix(strings.TrimPrefix(filepath.ToSlash(p), filepath.ToSlash(path)), ".json"), "/")
		}
		return v.AddSchema(id, s)
	})
}

// AddSchema register json schema with id
func (v *JSONSchemaValidator) AddSchema(schemaID string, schema []byte) error {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return fmt.Errorf("%s: %v", schemaID, err)
	}
	v.schemas[schemaID] = s
	return nil
}

// ValidateDocument based on schema id
func (v *JSONSchemaValidator) ValidateDocument(schemaID string, documentSource []byte) error {
	schema, ok := v.schemas[schemaID]
	if !ok {
		return fmt.Errorf("schema '%s' not found", schemaID)
	}

	multiError := candihelper.NewMultiError()

	result, err := schema.Validate(gojsonschema.NewBytesLoader(documentSource))
	if err != nil {
		multiError.Append("document", errors.New("invalid json document"))
		return multiError
	}

	for _, desc := range result.Errors() {
		if notShowErrorListType[desc.Type()] {
			continue
		}
		field := desc.Field()
		if desc.Type() == "required" || desc.Type() == "additional_property_not_allowed" {
			field = fmt.Sprintf("%s.%s", field, desc.Details()["property"])
			field = strings.TrimPrefix(field, "(root).")
		}
		multiError.Append(field, errors.New(desc.Description()))
	}

	if multiError.HasError() {
		return multiError
	}
	return nil
}
