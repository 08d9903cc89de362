package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"clientbook/internal/model"
)

// ErrRunFailed is returned when a script run ends with outcome FAILURE.
var ErrRunFailed = errors.New("run finished with failures")

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a script of commands and print a JSON report",
		Long: `Run executes one command per line from FILE ("-" reads stdin). Blank lines and
lines starting with # are skipped. The JSON report lists a message per command
and a JSON patch from the starting address book to the final one.`,
		Args: cobra.ExactArgs(1),
		RunE: runScript,
	}
	cmd.Flags().Bool("continue-on-error", false, "Keep running after a command fails")
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	lines, err := readScript(cmd, args[0])
	if err != nil {
		return err
	}
	continueOnError, _ := cmd.Flags().GetBool("continue-on-error")

	ctx := cmd.Context()
	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	resp := a.engine.Run(ctx, &model.Request{Commands: lines, ContinueOnError: continueOnError})

	body, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(body))

	if resp.Metadata.Outcome == model.OutcomeFailure {
		return ErrRunFailed
	}
	return nil
}

func readScript(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}
