package persistence

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var documentSchema []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("document.json", bytes.NewReader(documentSchema)); err != nil {
			schemaErr = fmt.Errorf("failed to load document schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("document.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile document schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Validate checks raw document bytes against the document schema.
func Validate(raw []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
