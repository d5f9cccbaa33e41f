package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	radio "github.com/caspianmerlin/aviation-radio"
	"github.com/caspianmerlin/aviation-radio/internal/audit"
	"github.com/caspianmerlin/aviation-radio/internal/config"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "freqcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate_Args(t *testing.T) {
	res := runCLI(t, "", "validate", "120.905", "121.500")
	require.NoError(t, res.err)
	assert.Equal(t, "OK   120.905 8.33kHz\nOK   121.500 25kHz\n", res.stdout)
}

func TestValidate_Rejections(t *testing.T) {
	res := runCLI(t, "", "validate", "138.005", "118.003", "abc.005", "120", "120.905")
	require.ErrorIs(t, res.err, errChecksFailed)
	assert.Contains(t, res.err.Error(), "4 of 5")

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	assert.Equal(t, []string{
		"FAIL 138.005: invalid frequency",
		"FAIL 118.003: invalid frequency",
		"FAIL abc.005: int parse error",
		"FAIL 120: not enough parts",
		"OK   120.905 8.33kHz",
	}, lines)
}

func TestValidate_StdinJSON(t *testing.T) {
	stdin := "# tower\n118.100\n\n  132.830  \n121.501\n"
	res := runCLI(t, stdin, "validate", "--json")
	require.ErrorIs(t, res.err, errChecksFailed)

	var results []checkResult
	for _, line := range strings.Split(strings.TrimSpace(res.stdout), "\n") {
		var result checkResult
		require.NoError(t, json.Unmarshal([]byte(line), &result))
		results = append(results, result)
	}
	require.Len(t, results, 3)

	assert.True(t, results[0].OK)
	assert.Equal(t, audit.CodeSuccess, results[0].Code)
	require.NotNil(t, results[0].Frequency)
	assert.Equal(t, radio.MustNew(118, 100), *results[0].Frequency)
	assert.Equal(t, "25kHz", results[0].Spacing)

	assert.Equal(t, "132.830", results[1].Input)
	assert.Equal(t, "8.33kHz", results[1].Spacing)

	assert.False(t, results[2].OK)
	assert.Equal(t, audit.CodeInvalidFrequency, results[2].Code)
	assert.Nil(t, results[2].Frequency)
	assert.Equal(t, "invalid frequency", results[2].Error)
}

func TestValidate_PolicyAndAudit(t *testing.T) {
	auditDir := filepath.Join(t.TempDir(), "audit")
	cfgPath := writeConfig(t, `
audit:
  enabled: true
  dir: `+auditDir+`
policy:
  spacing: 25kHz
  reserved:
    - "121.500"
`)

	res := runCLI(t, "", "--config", cfgPath, "validate", "121.500", "120.905", "124.350")
	require.ErrorIs(t, res.err, errChecksFailed)
	assert.Equal(t,
		"FAIL 121.500 25kHz: reserved frequency\n"+
			"FAIL 120.905 8.33kHz: spacing not allowed: 8.33kHz channel under 25kHz policy\n"+
			"OK   124.350 25kHz\n",
		res.stdout)

	data, err := os.ReadFile(filepath.Join(auditDir, audit.FileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	var codes []string
	for _, line := range lines {
		var entry audit.Entry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "args", entry.Source)
		codes = append(codes, entry.Code)
	}
	assert.Equal(t, []string{audit.CodeReserved, audit.CodeSpacingMismatch, audit.CodeSuccess}, codes)
}

func TestValidate_DebugLogging(t *testing.T) {
	res := runCLI(t, "", "--log-level", "debug", "validate", "120.901")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `"message":"configuration loaded"`)
	assert.Contains(t, res.stderr, `"message":"frequency rejected"`)
	assert.Contains(t, res.stderr, `"component":"validate"`)
}

func TestInvalidLogLevelFlag(t *testing.T) {
	res := runCLI(t, "", "--log-level", "loud", "validate", "120.905")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `invalid --log-level "loud"`)
	assert.Empty(t, res.stdout)

	res = runCLI(t, "", "--log-level", "warn", "validate", "120.905")
	require.NoError(t, res.err)
}

func TestBadConfig(t *testing.T) {
	cfgPath := writeConfig(t, "policy:\n  spacing: 12.5kHz\n")
	res := runCLI(t, "", "--config", cfgPath, "validate", "120.905")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid spacing")
	assert.Empty(t, res.stdout)
}

func TestSort(t *testing.T) {
	res := runCLI(t, "", "sort", "136.975", "118.1000", "121.500", "118.005", "121.500")
	require.NoError(t, res.err)
	assert.Equal(t, "118.005\n118.1000\n121.500\n121.500\n136.975\n", res.stdout)

	res = runCLI(t, "", "sort", "--unique", "121.500", "118.005", "121.500")
	require.NoError(t, res.err)
	assert.Equal(t, "118.005\n121.500\n", res.stdout)
}

func TestSort_StdinJSON(t *testing.T) {
	res := runCLI(t, "121.500\n118.005\n", "--json", "sort")
	require.NoError(t, res.err)

	var got []radio.Frequency
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, []radio.Frequency{radio.MustNew(118, 5), radio.MustNew(121, 500)}, got)

	res = runCLI(t, "", "--json", "sort")
	require.NoError(t, res.err)
	assert.Equal(t, "[]\n", res.stdout)
}

func TestSort_InvalidInput(t *testing.T) {
	res := runCLI(t, "", "sort", "121.500", "121.501")
	require.ErrorIs(t, res.err, radio.ErrInvalidFrequency)
	assert.Contains(t, res.err.Error(), `"121.501"`)
	assert.Empty(t, res.stdout)
}

func TestFormat(t *testing.T) {
	res := runCLI(t, "", "format", "--frequency", "120.905")
	require.NoError(t, res.err)
	assert.Equal(t, "frequency: 120.905\nleft:      120\nright:     905\nspacing:   8.33kHz\n", res.stdout)

	res = runCLI(t, "", "--json", "format", "--frequency", "0121.5")
	require.NoError(t, res.err)
	assert.JSONEq(t, `{"left":121,"right":5,"is_25_khz_spaced":false}`, res.stdout)
}

func TestFormat_Errors(t *testing.T) {
	res := runCLI(t, "", "format")
	assert.Error(t, res.err, "missing required flag")

	res = runCLI(t, "", "format", "--frequency", "138.005")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "invalid frequency")
}
