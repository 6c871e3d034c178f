package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Row
		wantErr  error
	}{
		{
			name:     "json",
			in:       `{"acct_no": "000123", "amount": 250.5, "count": 3, "memo": null, "active": true}`,
			expected: Row{"acct_no": "000123", "amount": 250.5, "count": 3, "memo": nil, "active": true},
		},
		{
			name:     "yaml flow",
			in:       `{status: OPEN, balance: "1000.00"}`,
			expected: Row{"status": "OPEN", "balance": "1000.00"},
		},
		{
			name:     "yaml block",
			in:       "first_name: Ada\nlast_name: ~\n",
			expected: Row{"first_name": "Ada", "last_name": nil},
		},
		{
			name:     "empty",
			in:       "",
			expected: Row{},
		},
		{
			name:    "nested map",
			in:      `{address: {city: Oslo}}`,
			wantErr: ErrNotScalar,
		},
		{
			name:    "list",
			in:      `{tags: [a, b]}`,
			wantErr: ErrNotScalar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := ParseRow([]byte(tt.in))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, row)
		})
	}

	_, err := ParseRow([]byte("[1, 2]"))
	require.Error(t, err)
}
