package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/addonlint/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "addonlint-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "addonlint")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../..")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/manifests", name))
	return abs
}

func run(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Validate Tests ---

func TestE2E_ValidateValid(t *testing.T) {
	out, code := run(t, "", "validate", fixturePath("valid.json"), "--no-history")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "valid manifest")
	assert.Contains(t, out, "Cinemeta Clone")
}

func TestE2E_ValidateWarnings(t *testing.T) {
	out, code := run(t, "", "validate", fixturePath("warnings.json"), "--no-history")
	assert.Equal(t, 0, code, "unknown fields alone should not fail the run")
	assert.Contains(t, out, "unknown field")
	assert.Contains(t, out, "fanart")
}

func TestE2E_ValidateWarningsStrict(t *testing.T) {
	_, code := run(t, "", "validate", fixturePath("warnings.json"), "--strict", "--no-history")
	assert.Equal(t, 1, code, "strict mode should fail on unknown fields")
}

func TestE2E_ValidateInvalid(t *testing.T) {
	out, code := run(t, "", "validate", fixturePath("invalid.json"), "--no-history")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "invalid manifest")
}

func TestE2E_ValidateStdin(t *testing.T) {
	data, err := os.ReadFile(fixturePath("valid.json"))
	require.NoError(t, err)

	out, code := run(t, string(data), "validate", "-", "--no-history")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "valid manifest")
}

func TestE2E_ValidateJSON(t *testing.T) {
	out, code := run(t, "", "validate", fixturePath("warnings.json"), "--json", "--no-history")
	assert.Equal(t, 0, code)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, domain.StatusWarnings, report.Outcome.Status)
	assert.Equal(t, domain.SourceFile, report.Kind)
	assert.NotEmpty(t, report.Outcome.Issues)
}

// --- Fmt Tests ---

func TestE2E_Fmt(t *testing.T) {
	out, code := run(t, `{"id":"org.example","version":"1.0.0"}`, "fmt", "-")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "  \"id\": \"org.example\"")
}

// --- Share Tests ---

func TestE2E_ShareRoundTrip(t *testing.T) {
	link, code := run(t, "", "share", fixturePath("valid.json"))
	require.Equal(t, 0, code)
	require.Contains(t, link, "?m=")

	restored, code := run(t, "", "share", "--decode", strings.TrimSpace(link))
	require.Equal(t, 0, code)

	original, err := os.ReadFile(fixturePath("valid.json"))
	require.NoError(t, err)
	assert.Equal(t, string(original), restored)
}

func TestE2E_ValidateShareLink(t *testing.T) {
	link, code := run(t, "", "share", fixturePath("valid.json"))
	require.Equal(t, 0, code)

	out, code := run(t, "", "validate", strings.TrimSpace(link), "--no-history")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "valid manifest")
}

// --- Version ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "addonlint")
}
