package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/g3ntleman/go-clj/internal/errors"
	"github.com/g3ntleman/go-clj/pkg/clj"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Read forms from standard input, evaluate them, and print the value
of the last top-level form on each line. The loop is line-based: no line editing or
history is provided.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	engine, err := clj.New(clj.WithOutput(os.Stdout), clj.WithFile("<repl>"))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s=> ", engine.CurrentNamespace())
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return err
			}
			fmt.Println()
			return nil
		}
		line := in.Text()
		if line == "" {
			continue
		}

		result, err := engine.EvalString(line)
		if err != nil {
			if exc, ok := clj.AsException(err); ok {
				fmt.Fprint(os.Stderr, errors.NewScriptError(exc, line).Format(true))
				continue
			}
			return err
		}
		fmt.Println(clj.PrStr(result))
	}
}
