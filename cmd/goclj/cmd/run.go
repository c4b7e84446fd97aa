package cmd

import (
	"fmt"
	"os"

	"github.com/g3ntleman/go-clj/internal/errors"
	"github.com/g3ntleman/go-clj/pkg/clj"
	"github.com/spf13/cobra"
)

var (
	evalExpr    string
	printResult bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a go-clj source file or expression",
	Long: `Evaluate a program from a file or an inline expression.

Examples:
  # Run a script file
  goclj run script.clj

  # Evaluate an inline expression
  goclj run -e "(println (+ 1 2 3))"

  # Evaluate and print the result of the last form
  goclj run -p -e "(+ 1 2 3)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVarP(&printResult, "print", "p", false, "print the value of the last top-level form")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	engine, err := clj.New(clj.WithOutput(os.Stdout), clj.WithFile(filename))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	result, err := engine.EvalString(input)
	if err != nil {
		if exc, ok := clj.AsException(err); ok {
			fmt.Fprint(os.Stderr, errors.NewScriptError(exc, input).Format(true))
			return fmt.Errorf("execution failed")
		}
		return err
	}

	if printResult {
		fmt.Println(clj.PrStr(result))
	}
	return nil
}
