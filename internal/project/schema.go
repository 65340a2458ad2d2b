package project

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

const schemaName = "project.schema.json"

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaName, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// validateDocument checks raw document bytes against the project schema.
func validateDocument(schema *jsonschema.Schema, data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", flattenSchemaError(err))
	}
	return nil
}

// flattenSchemaError reduces a jsonschema error tree to its leaf causes so
// messages point at concrete locations instead of the document root.
func flattenSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaves := collectLeaves(ve, nil)
	if len(leaves) == 0 {
		return err
	}
	msg := ""
	for i, leaf := range leaves {
		if i > 0 {
			msg += "; "
		}
		if loc := pointerToPath(leaf.InstanceLocation); loc != "" {
			msg += fmt.Sprintf("%s: %s", loc, leaf.Message)
		} else {
			msg += leaf.Message
		}
	}
	return fmt.Errorf("%s", msg)
}

// pointerToPath converts a JSON Pointer like "/tasks/0/text" to the
// dot-notation path "tasks[0].text" used in error messages.
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}

func collectLeaves(ve *jsonschema.ValidationError, out []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return append(out, ve)
	}
	for _, cause := range ve.Causes {
		out = collectLeaves(cause, out)
	}
	return out
}
