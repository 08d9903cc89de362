// Package cli provides the cobra commands of clientbook: an interactive
// session, batch script runs and the HTTP server.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"clientbook/internal/commands"
	"clientbook/internal/engine"
	"clientbook/internal/parser"
)

const (
	replPrompt  = "> "
	replHelp    = "help"
	replExit    = "exit"
	replWelcome = "Welcome to clientbook. Type \"help\" for the list of commands."
	replGoodbye = "Exiting clientbook as requested ..."
)

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clientbook",
		Short: "Manage clients, their insurance plans and claims",
		Long: `clientbook keeps an address book of clients together with the insurance
plans they hold and the claims filed against each plan.

Without a subcommand it starts an interactive session reading commands from stdin.`,
		Example: `  # Interactive session
  clientbook

  # Run a script of commands and print a JSON report
  clientbook run commands.txt

  # Serve the HTTP API
  clientbook serve --addr :8080`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runRepl,
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to a JSON config file")
	root.PersistentFlags().String("data", "", "Path to the address book data file (overrides data_file)")
	root.PersistentFlags().String("storage", "", "Storage driver: json or sqlite (overrides storage_driver)")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	root.AddCommand(newRunCmd(), newServeCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func runRepl(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, replWelcome)
	return repl(cmd.InOrStdin(), out, func(line string) {
		res, err := a.engine.Execute(ctx, line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			return
		}
		fmt.Fprintln(out, res.Feedback)
		if showsClients(line) {
			printClients(out, a.engine)
		}
	})
}

// repl feeds each non-blank input line to exec until exit or end of input.
func repl(in io.Reader, out io.Writer, exec func(line string)) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, replPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case replExit:
			fmt.Fprintln(out, replGoodbye)
			return nil
		case replHelp:
			fmt.Fprintln(out, parser.HelpText())
			continue
		}
		exec(line)
	}
}

func showsClients(line string) bool {
	word, _, _ := strings.Cut(line, " ")
	return word == commands.ListWord || word == commands.FindWord
}

func printClients(out io.Writer, e *engine.Engine) {
	for _, l := range e.ClientLines() {
		fmt.Fprintln(out, l)
	}
}
