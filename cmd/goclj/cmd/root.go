package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "goclj",
	Short: "Clojure-dialect interpreter",
	Long: `go-clj is a Go implementation of a small Clojure dialect aimed at
resource-constrained hosts.

The runtime provides:
  - Immutable persistent vectors and maps with transient variants
  - Lexical closures, namespaces and tail-call iteration via recur
  - Typed, position-tagged exceptions with try/catch/finally
  - A streaming UTF-8 reader for Clojure-like source text`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
