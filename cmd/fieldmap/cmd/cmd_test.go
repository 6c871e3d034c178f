package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap/internal/mapping"
)

const extract = `sourceSystem: CORE_BANKING
jobName: daily-extract
transactionType: ACH_DEBIT
fields:
  - fieldName: recordType
    targetPosition: 1
    length: 3
    transformationType: constant
    value: ACH
  - fieldName: accountNumber
    targetPosition: 2
    length: 8
    transformationType: source
    sourceField: acct_no
    pad: left
    padChar: "0"
  - fieldName: riskFlag
    targetPosition: 3
    length: 9
    transformationType: conditional
    defaultValue: UNKNOWN
    pad: right
    conditions:
      - ifExpr: "status = 'OPEN'"
        then: LOW_RISK
        elseIfExprs:
          - ifExpr: "status = 'DEFAULT'"
            then: HIGH_RISK
---
transactionType: WIRE_OUT
fields:
  - fieldName: avgBalance
    targetPosition: 1
    length: 8
    transformationType: composite
    sources: [checking, savings, investment]
    transform: average
    pad: left
`

const broken = `transactionType: ACH_DEBIT
fields:
  - fieldName: a
    targetPosition: 1
    transformationType: constant
    value: X
  - fieldName: b
    targetPosition: 1
    transformationType: constnt
    value: Y
`

// setup isolates the command from the caller's environment and writes
// the given mapping sources into a temp dir.
func setup(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("FIELDMAP_MAPPING", "")
	t.Setenv("FIELDMAP_TYPE", "")

	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRender(t *testing.T) {
	setup(t, map[string]string{"extract.yaml": extract})

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "conditional else-if",
			args:     []string{"render", "--mapping", "extract.yaml", "--type", "ACH_DEBIT", "--row", `{"acct_no": "1234", "status": "DEFAULT"}`},
			expected: "ACH00001234HIGH_RISK\n",
		},
		{
			name:     "empty row uses defaults",
			args:     []string{"render", "--mapping", "extract.yaml", "--type", "ACH_DEBIT"},
			expected: "ACH00000000UNKNOWN  \n",
		},
		{
			name:     "composite average",
			args:     []string{"render", "--mapping", "extract.yaml", "--type", "WIRE_OUT", "--row", `{checking: "1000.00", savings: "2000.00", investment: "3000.00"}`},
			expected: "  2000.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderExplain(t *testing.T) {
	setup(t, map[string]string{"extract.yaml": extract})

	out, _, err := run(t, "render", "--mapping", "extract.yaml", "--type", "ACH_DEBIT",
		"--row", `{"acct_no": "42", "status": "OPEN"}`, "--explain")
	require.NoError(t, err)

	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, "ACH00000042LOW_RISK ", lines[0])
	assert.Contains(t, out, "accountNumber")
	assert.Contains(t, out, `"00000042"`)
	assert.Contains(t, out, `"LOW_RISK "`)
}

func TestRenderFromEnvironment(t *testing.T) {
	setup(t, map[string]string{"extract.yaml": extract})
	t.Setenv("FIELDMAP_MAPPING", "extract.yaml")
	t.Setenv("FIELDMAP_TYPE", "ACH_DEBIT")

	out, _, err := run(t, "render", "--row", `{status: OPEN}`)
	require.NoError(t, err)
	assert.Equal(t, "ACH00000000LOW_RISK \n", out)
}

func TestRenderErrors(t *testing.T) {
	setup(t, map[string]string{"extract.yaml": extract})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no mapping", args: []string{"render", "--type", "ACH_DEBIT"}, wantErr: "no mapping source"},
		{name: "no type", args: []string{"render", "--mapping", "extract.yaml"}, wantErr: "no transaction type"},
		{name: "missing file", args: []string{"render", "--mapping", "nope.yaml", "--type", "X"}, wantErr: "resource not found"},
		{name: "unknown type", args: []string{"render", "--mapping", "extract.yaml", "--type", "ACH_DEBT"}, wantErr: `did you mean "ACH_DEBIT"?`},
		{name: "bad row", args: []string{"render", "--mapping", "extract.yaml", "--type", "ACH_DEBIT", "--row", "{a: [1]}"}, wantErr: "scalars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheck(t *testing.T) {
	setup(t, map[string]string{"extract.yaml": extract, "broken.yaml": broken})

	out, _, err := run(t, "check", "extract.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "ok document 0 ACH_DEBIT (3 fields)")
	assert.Contains(t, out, "ok document 1 WIRE_OUT (1 fields)")

	out, _, err = run(t, "check", "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 documents failed")
	assert.Contains(t, out, "FAIL document 0 ACH_DEBIT")
	assert.Contains(t, out, "duplicate_position")
	assert.Contains(t, out, `did you mean "constant"?`)

	_, _, err = run(t, "check")
	require.ErrorIs(t, err, errNoMapping)
}

func TestCheckUsesConfigFile(t *testing.T) {
	setup(t, map[string]string{
		"extract.yaml":  extract,
		"fieldmap.yaml": "mapping: extract.yaml\nlog-format: json\n",
	})

	out, _, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ACH_DEBIT")
}

func TestList(t *testing.T) {
	setup(t, map[string]string{"extract.yaml": extract})

	out, _, err := run(t, "list", "extract.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "TRANSACTION TYPE")
	assert.Contains(t, out, "ACH_DEBIT")
	assert.Contains(t, out, "CORE_BANKING")
	assert.Contains(t, out, "WIRE_OUT")
	assert.Contains(t, out, "20")
}

func TestInvalidLogLevel(t *testing.T) {
	setup(t, map[string]string{"extract.yaml": extract})

	_, _, err := run(t, "list", "extract.yaml", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

const withUnknownKind = `transactionType: ODD
fields:
  - fieldName: code
    targetPosition: 1
    length: 4
    transformationType: bogus
    defaultValue: DEF
`

func TestRenderExplainEvaluatesOnce(t *testing.T) {
	setup(t, map[string]string{"odd.yaml": withUnknownKind})

	out, logs, err := run(t, "render", "--mapping", "odd.yaml", "--type", "ODD", "--explain", "--log-format", "json")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "DEF \n"), out)
	assert.Equal(t, 1, strings.Count(logs, "unknown transformation type, using default value"), logs)
}

func TestFmt(t *testing.T) {
	dir := setup(t, map[string]string{"extract.yaml": extract})

	out, _, err := run(t, "fmt", "extract.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "targetField: recordType")
	assert.Contains(t, out, "\n---\n")

	original, err := mapping.LoadDocuments(filepath.Join(dir, "extract.yaml"))
	require.NoError(t, err)

	printed, err := mapping.ParseDocuments([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, original, printed)

	unchanged, err := os.ReadFile(filepath.Join(dir, "extract.yaml"))
	require.NoError(t, err)
	assert.Equal(t, extract, string(unchanged))
}

func TestFmtWrite(t *testing.T) {
	dir := setup(t, map[string]string{"extract.yaml": "# comment\n" + extract})

	out, _, err := run(t, "fmt", "--write", "extract.yaml")
	require.NoError(t, err)
	assert.Empty(t, out)

	rewritten, err := os.ReadFile(filepath.Join(dir, "extract.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(rewritten), "# comment")
	assert.Contains(t, string(rewritten), "targetField: accountNumber")

	out, _, err = run(t, "render", "--mapping", "extract.yaml", "--type", "ACH_DEBIT", "--row", `{status: OPEN}`)
	require.NoError(t, err)
	assert.Equal(t, "ACH00000000LOW_RISK \n", out)
}

func TestFmtRejectsInvalidSource(t *testing.T) {
	setup(t, map[string]string{"broken.yaml": broken})

	_, _, err := run(t, "fmt", "broken.yaml")
	require.ErrorIs(t, err, mapping.ErrParse)
}
