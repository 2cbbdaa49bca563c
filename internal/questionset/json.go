package questionset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordSchemaURL = "schema://praclab/question-record.json"

// recordSchema describes one question object in a JSON question set.
var recordSchema = map[string]any{
	"type":     "object",
	"required": []any{"question", "answer"},
	"properties": map[string]any{
		"question":    map[string]any{"type": "string", "pattern": `\S`},
		"answer":      map[string]any{"type": "string", "pattern": `\S`},
		"explanation": map[string]any{"type": []any{"string", "null"}},
	},
}

var (
	compileOnce    sync.Once
	compiledRecord *jsonschema.Schema
	compileErr     error
)

// recordValidator returns the compiled record schema.
func recordValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, recordSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledRecord, compileErr = c.Compile(recordSchemaURL)
	})
	return compiledRecord, compileErr
}

func parseJSONFile(_ context.Context, path string, rep *Report) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}
	return parseJSON(data, rep)
}

// parseJSON reads a top-level array of question objects. Objects that do not
// satisfy the record schema are skipped.
func parseJSON(data []byte, rep *Report) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	items, ok := doc.([]any)
	if !ok {
		return fmt.Errorf("parse json: top-level value must be an array")
	}

	schema, err := recordValidator()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}

	for i, item := range items {
		loc := fmt.Sprintf("record %d", i+1)
		if err := schema.Validate(item); err != nil {
			rep.skip(loc, firstLine(err.Error()))
			continue
		}
		obj := item.(map[string]any)
		explanation, _ := obj["explanation"].(string)
		rep.add(loc, obj["question"].(string), obj["answer"].(string), explanation)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
