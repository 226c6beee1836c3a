// cmdparse turns free-text command documentation into structured records
// by delegating extraction to the Gemini API, many documents at a time.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cmdparse",
	Short: "Extract structured records from command documentation",
	Long: "cmdparse reads a JSON array of free-text command documentation strings,\n" +
		"extracts one structured record per string via the Gemini API (bounded\n" +
		"concurrency, per-item retry with exponential backoff), and writes the\n" +
		"aggregated records as a JSON array in input order.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
