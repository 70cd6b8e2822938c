package laws

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://uxlab/laws.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// catalogSchema returns the compiled catalog schema.
func catalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := content.ReadFile("content/laws.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read catalog schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add catalog schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateStructure checks a decoded YAML document against the catalog
// schema. The document is normalized through JSON first so the validator
// only sees JSON value types.
func validateStructure(doc any) error {
	sch, err := catalogSchema()
	if err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize catalog: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("normalize catalog: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("catalog schema: %w", err)
	}
	return nil
}
