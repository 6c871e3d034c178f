package record

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotScalar is returned by ParseRow for nested values.
var ErrNotScalar = errors.New("row values must be scalars")

// ParseRow decodes a single row from a YAML or JSON mapping, e.g.
// `{"acct_no": "12345", "amount": 250.5, "memo": null}`. Values must be
// scalars; unquoted numbers decode as int or float64.
func ParseRow(data []byte) (Row, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse row: %w", err)
	}

	row := make(Row, len(raw))

	for k, v := range raw {
		switch v.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: field %q", ErrNotScalar, k)
		}

		row[k] = v
	}

	return row, nil
}
