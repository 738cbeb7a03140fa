package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/addonlint/internal/adapters/inbound/cli"
)

const validManifest = `{
	"id": "org.example.addon",
	"version": "1.0.0",
	"name": "Example Addon",
	"types": ["movie", "series"],
	"resources": ["catalog", "stream"],
	"catalogs": [{"type": "movie", "id": "top"}]
}`

const unknownFieldManifest = `{
	"id": "org.example.addon",
	"version": "1.0.0",
	"name": "Example Addon",
	"types": ["movie"],
	"resources": ["stream"],
	"catalogs": [],
	"fanart": "https://example.com/bg.jpg"
}`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "addonlint dev")
}

func TestValidateCommand_ValidFile(t *testing.T) {
	path := writeManifest(t, validManifest)

	out, err := run(t, "", "validate", path, "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "valid manifest")
	assert.Contains(t, out, "Example Addon 1.0.0")
}

func TestValidateCommand_Stdin(t *testing.T) {
	out, err := run(t, validManifest, "validate", "-", "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "valid manifest")
}

func TestValidateCommand_InvalidFails(t *testing.T) {
	path := writeManifest(t, `{"id": "org.example"}`)

	out, err := run(t, "", "validate", path, "--no-history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error(s)")
	assert.Contains(t, out, "invalid manifest")
}

func TestValidateCommand_WarningsPassWithoutStrict(t *testing.T) {
	path := writeManifest(t, unknownFieldManifest)

	out, err := run(t, "", "validate", path, "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown field")
}

func TestValidateCommand_WarningsFailUnderStrict(t *testing.T) {
	path := writeManifest(t, unknownFieldManifest)

	_, err := run(t, "", "validate", path, "--strict", "--no-history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict")
}

func TestValidateCommand_JSON(t *testing.T) {
	path := writeManifest(t, validManifest)

	out, err := run(t, "", "validate", path, "--json", "--no-history")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &report), "output should be valid JSON")
	assert.Contains(t, report, "outcome")
	assert.Equal(t, "file", report["kind"])
}

func TestValidateCommand_JSONMultiple(t *testing.T) {
	a := writeManifest(t, validManifest)
	b := writeManifest(t, unknownFieldManifest)

	out, err := run(t, "", "validate", a, b, "--json", "--no-history")
	require.NoError(t, err)

	var reports []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &reports), "output should be a JSON array")
	require.Len(t, reports, 2)
	assert.Equal(t, a, reports[0]["source"], "report order follows argument order")
}

func TestValidateCommand_MissingFileIsReportedNotFatal(t *testing.T) {
	out, err := run(t, "", "validate", filepath.Join(t.TempDir(), "absent.json"), "--no-history")
	require.Error(t, err, "a missing file counts as a validation error")
	assert.Contains(t, out, "read_error")
}

func TestFmtCommand(t *testing.T) {
	out, err := run(t, `{"id":"org.example","name":"X"}`, "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"org.example\",\n  \"name\": \"X\"\n}\n", out)
}

func TestFmtCommand_Write(t *testing.T) {
	path := writeManifest(t, `{"id":"org.example"}`)

	_, err := run(t, "", "fmt", path, "-w")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"org.example\"\n}\n", string(data))
}

func TestFmtCommand_InvalidJSONPassesThrough(t *testing.T) {
	out, err := run(t, "not json at all", "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t, "not json at all\n", out)
}

func TestShareCommand_RoundTrip(t *testing.T) {
	path := writeManifest(t, validManifest)

	link, err := run(t, "", "share", path)
	require.NoError(t, err)
	assert.Contains(t, link, "?m=")

	restored, err := run(t, "", "share", "--decode", strings.TrimSpace(link))
	require.NoError(t, err)
	assert.Equal(t, validManifest, restored)
}

func TestShareCommand_ValidateLink(t *testing.T) {
	path := writeManifest(t, validManifest)

	link, err := run(t, "", "share", path)
	require.NoError(t, err)

	out, err := run(t, "", "validate", strings.TrimSpace(link), "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "valid manifest")
}

func TestShareCommand_NoArgs(t *testing.T) {
	_, err := run(t, "", "share")
	require.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created .addonlint.yaml")

	data, err := os.ReadFile(filepath.Join(dir, ".addonlint.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetch_timeout:")
	assert.Contains(t, string(data), "debounce:")

	_, err = run(t, "", "init", dir)
	require.Error(t, err, "refuses to overwrite without --force")

	_, err = run(t, "", "init", dir, "--force")
	require.NoError(t, err)
}
