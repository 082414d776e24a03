// Package document loads tables described in YAML.
package document

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/boxtable/internal/table"
	tableerrors "github.com/alexisbeaulieu97/boxtable/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is the YAML form of a table.
type Document struct {
	Style   string     `yaml:"style" validate:"omitempty,table_style"`
	Headers []string   `yaml:"headers" validate:"required,min=1"`
	Rows    [][]string `yaml:"rows"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tableerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a document. source names the input in errors.
func Parse(data []byte, source string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, tableerrors.NewParseError(source, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&doc); err != nil {
		return nil, convertValidationError(err)
	}

	return &doc, nil
}

// Build creates a table from the document. Header problems surface as the
// table's INVALID_HEADERS error.
func (d *Document) Build(opts ...table.Option) (*table.Table, error) {
	t := table.New(table.StyleID(d.Style), opts...)
	if err := t.SetHeaders(d.Headers...); err != nil {
		return nil, err
	}
	for i, row := range d.Rows {
		if err := t.AddRow(row...); err != nil {
			return nil, fmt.Errorf("rows[%d]: %w", i, err)
		}
	}
	return t, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
