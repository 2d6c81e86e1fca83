package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/portfolio-terminal/internal/schemas"
	"github.com/jonathan/portfolio-terminal/internal/types"
)

//go:embed default_portfolio.json
var defaultPortfolio []byte

// DefaultSource names the content compiled into the binary.
const DefaultSource = "embedded:default_portfolio.json"

// Default loads the portfolio compiled into the binary.
func Default() (*Store, error) {
	return LoadJSON(defaultPortfolio, DefaultSource)
}

// LoadFile loads a content file, choosing the decoder by extension (.json or .hcl).
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StartupDataError{
			Source:  path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadJSON(data, path)
	case ".hcl":
		return LoadHCL(data, path)
	default:
		return nil, &StartupDataError{
			Source:  path,
			Message: fmt.Sprintf("unsupported content format %q (want .json or .hcl)", ext),
		}
	}
}

// LoadJSON validates a JSON document against the portfolio schema, decodes it
// and builds a Store.
func LoadJSON(data []byte, source string) (*Store, error) {
	if err := schemas.ValidatePortfolio(data); err != nil {
		return nil, &StartupDataError{
			Source:  source,
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var p types.Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, &StartupDataError{
			Source:  source,
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return New(p, source)
}
