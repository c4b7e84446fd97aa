package cmd

import (
	"fmt"
	"os"

	"github.com/g3ntleman/go-clj/internal/errors"
	"github.com/g3ntleman/go-clj/pkg/clj"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Read source text and print the parsed forms",
	Long: `Parse a file or inline expression without evaluating it, printing
each top-level form readably. Useful for inspecting what the reader
produces for quoting, metadata and literals.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case parseEvalExpr != "":
		input = parseEvalExpr
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

	engine, err := clj.New(clj.WithFile(filename))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	forms, err := engine.ParseAll(input)
	if err != nil {
		if exc, ok := clj.AsException(err); ok {
			fmt.Fprint(os.Stderr, errors.NewScriptError(exc, input).Format(true))
			return fmt.Errorf("parsing failed")
		}
		return err
	}

	for _, form := range forms {
		fmt.Println(clj.PrStr(form))
	}
	return nil
}
