// Package schemas holds the JSON Schema documents for portfolio content files.
package schemas

import _ "embed"

// Portfolio is the JSON Schema for a portfolio content file.
//
//go:embed portfolio.schema.json
var Portfolio []byte
