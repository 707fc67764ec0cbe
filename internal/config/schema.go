package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	schemaData "github.com/gvko/minigrep/schema"
	"github.com/xeipuuv/gojsonschema"
)

var schemaJSON = schemaData.Bytes

// ErrSchema is wrapped by every schema violation.
var ErrSchema = errors.New("schema validation failed")

// ValidateAgainstSchema checks the file-backed part of cfg.
func ValidateAgainstSchema(cfg Config) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return validateJSON(b)
}

// validateDocument checks the settings file as written, before decoding.
// The merged Config has no field for an unknown key, so a misspelled key is
// only caught here.
func validateDocument(doc map[string]any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return validateJSON(b)
}

func validateJSON(doc []byte) error {
	if len(schemaJSON) == 0 {
		return errors.New("schema not embedded")
	}
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(doc)
	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
