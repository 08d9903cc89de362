package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientbook/internal/model"
	"clientbook/internal/parser"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600))
	return path
}

func decodeReport(t *testing.T, out string) model.Response {
	t.Helper()
	var resp model.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

func TestRun_SuccessPersists(t *testing.T) {
	data := filepath.Join(t.TempDir(), "book.json")
	script := writeScript(t,
		"# seed one client",
		"add n/Amy Bee p/85355255 e/amy@example.com a/1 Main St",
		"",
		"addInsurance 1 i/0",
		"addClaim 1 i/0 c/T100 amt/80",
		"closeClaim 1 i/0 c/T100",
	)

	out, err := execute(t, "", "--data", data, "run", script)
	require.NoError(t, err)

	resp := decodeReport(t, out)
	assert.Equal(t, model.OutcomeSuccess, resp.Metadata.Outcome)
	assert.Len(t, resp.Result.Commands, 4)
	assert.Equal(t, 1, resp.Result.ClientCount)

	stored, err := os.ReadFile(data)
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"status": "closed"`)
}

func TestRun_FailureReturnsError(t *testing.T) {
	data := filepath.Join(t.TempDir(), "book.json")
	script := writeScript(t,
		"add n/Amy Bee p/85355255 e/amy@example.com a/1 Main St",
		"deleteClaim 1 i/0 c/T100",
		"list",
	)

	out, err := execute(t, "", "--data", data, "run", script)
	require.ErrorIs(t, err, ErrRunFailed)

	resp := decodeReport(t, out)
	assert.Equal(t, model.OutcomeFailure, resp.Metadata.Outcome)
	require.Len(t, resp.Result.Messages, 2)
	assert.Equal(t, "PLAN_NOT_OWNED", resp.Result.Messages[1].Code)
}

func TestRun_ContinueOnErrorFromStdin(t *testing.T) {
	data := filepath.Join(t.TempDir(), "book.db")
	stdin := "bogus\nadd n/Amy Bee p/85355255 e/amy@example.com a/1 Main St\n"

	out, err := execute(t, stdin, "--data", data, "--storage", "sqlite", "run", "--continue-on-error", "-")
	require.ErrorIs(t, err, ErrRunFailed)

	resp := decodeReport(t, out)
	require.Len(t, resp.Result.Messages, 2)
	assert.Equal(t, "UNKNOWN_COMMAND", resp.Result.Messages[0].Code)
	assert.Equal(t, model.CodeOK, resp.Result.Messages[1].Code)
	assert.Equal(t, 1, resp.Result.ClientCount)
}

func TestRun_MissingScript(t *testing.T) {
	_, err := execute(t, "", "--data", filepath.Join(t.TempDir(), "b.json"), "run", "nope.txt")
	assert.ErrorContains(t, err, "open script")
}

func TestRepl(t *testing.T) {
	data := filepath.Join(t.TempDir(), "book.json")
	stdin := strings.Join([]string{
		"add n/Amy Bee p/85355255 e/amy@example.com a/1 Main St",
		"",
		"addInsurance 1 i/1",
		"closeClaim 1 c/X1",
		"list",
		"help",
		"exit",
		"add n/Never Reached p/123 e/n@example.com a/x",
	}, "\n")

	out, err := execute(t, stdin, "--data", data)
	require.NoError(t, err)

	assert.Contains(t, out, replWelcome)
	assert.Contains(t, out, "New client added: Amy Bee")
	assert.Contains(t, out, "Insurance plan: Health Insurance added to client: Amy Bee")
	assert.Contains(t, out, "Invalid command format!\ncloseClaim:")
	assert.Contains(t, out, "Listed all clients\n1. Amy Bee; Phone: 85355255")
	assert.Contains(t, out, parser.HelpText())
	assert.Contains(t, out, replGoodbye)
	assert.NotContains(t, out, "Never Reached")
}

func TestRepl_EndOfInput(t *testing.T) {
	out, err := execute(t, "list", "--data", filepath.Join(t.TempDir(), "book.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "Listed all clients")
	assert.NotContains(t, out, replGoodbye)
}

func TestConfigFlags(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"unknown storage driver": {
			args:    []string{"--storage", "csv", "run", "-"},
			wantErr: "config validation failed",
		},
		"missing config file": {
			args:    []string{"--config", "/does/not/exist.json", "run", "-"},
			wantErr: "config file",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "", tc.args...)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadConfig_DebugFlag(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--debug", "--data", "x.json"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "x.json", cfg.DataFile)
	assert.Equal(t, "json", cfg.StorageDriver)
}
