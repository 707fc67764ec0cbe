// Package schema embeds the JSON Schema for the settings file.
package schema

import _ "embed"

//go:embed config.schema.json
var Bytes []byte
