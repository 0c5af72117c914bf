package model

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateMap validates a generic map against the cv.schema.json file.
func ValidateMap(m map[string]interface{}) error {
	return ValidateMapWithSchema("templates/cv.schema.json", m)
}

// ValidateMapWithSchema validates a generic map against an arbitrary schema
// file. Use absolute canonical file:// paths so loaders on all platforms
// (including Windows) resolve file references correctly.
func ValidateMapWithSchema(schemaFile string, m map[string]interface{}) error {
	abs, err := filepath.Abs(schemaFile)
	if err != nil {
		return err
	}
	schemaPath := "file://" + filepath.ToSlash(abs)
	schemaLoader := gojsonschema.NewReferenceLoader(schemaPath)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
