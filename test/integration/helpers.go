//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIEndpoint string
	JphPath     string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("JPH_INTEGRATION_API"),
		JphPath:     getJphPath(),
		Verbose:     os.Getenv("JPH_INTEGRATION_VERBOSE") == "true",
	}
}

// getJphPath determines the path to the jph binary.
func getJphPath() string {
	if path := os.Getenv("JPH_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../jph", "./jph", "../jph"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "jph"
}

// SkipIfMissingConfig skips the test when no binary is available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.JphPath); err != nil {
		t.Skipf("jph binary not found at %s, skipping integration test", config.JphPath)
	}
}

// CommandRunner runs the jph binary.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes jph with args, pointed at the configured API.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes jph with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	if runner.config.APIEndpoint != "" {
		args = append([]string{"--api", runner.config.APIEndpoint}, args...)
	}

	// #nosec G204
	cmd := exec.Command(runner.config.JphPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)
	cmd.Env = append(os.Environ(), "HOME="+runner.t.TempDir())

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.JphPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var v interface{}
	if err := yaml.Unmarshal([]byte(output), &v); err != nil {
		t.Errorf("Output is not YAML: %v\n%s", err, output)
	}
}
