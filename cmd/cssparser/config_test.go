package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssparser.yaml")
	configContent := `
verbose: true
color: true

check:
  paths:
    - "web/**/*.css"
  output-format: json
  max-issues: 10
  gitignore: false

tokens:
  kind:
    - Identifier
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
	assert.Equal(t, []string{"web/**/*.css"}, k.Strings("check.paths"))
	assert.Equal(t, "json", k.String("check.output-format"))
	assert.Equal(t, 10, k.Int("check.max-issues"))
	assert.False(t, k.Bool("check.gitignore"))
	assert.Equal(t, []string{"Identifier"}, k.Strings("tokens.kind"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssparser.yaml"))

	config := buildCheckConfig()
	assert.Equal(t, []string{"**/*.css"}, config.Paths)
	assert.True(t, config.UseGitignore)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssparser.yaml")
	configContent := `
verbose: false
check:
  gitignore: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("CSSPARSER_VERBOSE", "true")
	t.Setenv("CSSPARSER_CHECK_GITIGNORE", "false")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.False(t, k.Bool("check.gitignore"))

	config := buildCheckConfig()
	assert.True(t, config.Verbose)
	assert.False(t, config.UseGitignore)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"CSSPARSER_VERBOSE", "verbose"},
		{"CSSPARSER_CHECK_GITIGNORE", "check.gitignore"},
		{"CSSPARSER_CHECK_MAX__ISSUES", "check.max-issues"},
		{"CSSPARSER_CHECK_MAX__SAME__ISSUES", "check.max-same-issues"},
		{"CSSPARSER_CHECK_OUTPUT__FORMAT", "check.output-format"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestEnvVarSetsHyphenatedKeys(t *testing.T) {
	resetKoanf()

	t.Setenv("CSSPARSER_CHECK_MAX__ISSUES", "7")
	t.Setenv("CSSPARSER_CHECK_MAX__SAME__ISSUES", "2")
	t.Setenv("CSSPARSER_CHECK_PRINT__LINES", "false")
	t.Setenv("CSSPARSER_CHECK_OUTPUT__FORMAT", "json")

	require.NoError(t, loadConfigFromPath("/nonexistent/.cssparser.yaml"))

	config := buildCheckConfig()
	assert.Equal(t, 7, config.MaxIssues)
	assert.Equal(t, 2, config.MaxSameIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.Equal(t, "json", getStringWithFallback("output-format", "check.output-format", ""))
}

func TestBuildCheckConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildCheckConfig()
	assert.Equal(t, []string{"**/*.css"}, config.Paths)
	assert.False(t, config.Verbose)
	assert.True(t, config.UseGitignore)
	assert.Equal(t, 0, config.MaxIssues)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
}

func TestBuildCheckConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssparser.yaml")
	configContent := `
check:
  paths:
    - "src/**/*.css"
    - "vendor.css"
  max-issues: 5
  max-same-issues: 2
  print-lines: false
  print-linter-name: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildCheckConfig()
	assert.Equal(t, []string{"src/**/*.css", "vendor.css"}, config.Paths)
	assert.Equal(t, 5, config.MaxIssues)
	assert.Equal(t, 2, config.MaxSameIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.False(t, config.PrintLinterName)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	_, _, err := executeCommand(t, "init")
	require.NoError(t, err)

	data, err := os.ReadFile(".cssparser.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "check:")
	assert.Contains(t, string(data), "tokens:")
	assert.Contains(t, string(data), "gitignore: true")

	// The written defaults load back into the same check config
	resetKoanf()
	require.NoError(t, loadConfigFromPath(".cssparser.yaml"))
	config := buildCheckConfig()
	assert.Equal(t, []string{"**/*.css"}, config.Paths)
	assert.True(t, config.PrintIssuedLines)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssparser.yaml", []byte("existing"), 0644))

	_, _, err := executeCommand(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssparser.yaml", []byte("existing"), 0644))

	_, _, err := executeCommand(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(".cssparser.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "check:")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cssparser dev\n", out)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetStringsWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, []string{"a"}, getStringsWithFallback("flag-key", "config.key", []string{"a"}))

	require.NoError(t, k.Set("config.key", []string{"b", "c"}))
	assert.Equal(t, []string{"b", "c"}, getStringsWithFallback("flag-key", "config.key", []string{"a"}))

	require.NoError(t, k.Set("flag-key", []string{"d"}))
	assert.Equal(t, []string{"d"}, getStringsWithFallback("flag-key", "config.key", []string{"a"}))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
