// Command bin2cpp converts a binarized config.cpp (or autosave.fps) to its
// human-readable text form, matching original_source/bin2cpp.c's CLI
// contract: one positional argument, text to stdout, exit 0 on success.
package main

import (
	"fmt"
	"os"

	"github.com/cotillion/ofptools/pkg/binconfig"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bin2cpp <binfile>",
	Short: "Decode a binarized config tree to readable text",
	Long: `bin2cpp decodes an Operation Flashpoint-era binarized config tree
(config.bin, mission.sqm, autosave.fps) and writes its human-readable
class/variable text form to standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: runBin2cpp,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBin2cpp(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := binconfig.NewByteReader(f)
	decoder := binconfig.NewConfigDecoder(reader)
	renderer := binconfig.NewRenderer(os.Stdout)

	if err := decoder.Decode(renderer); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if err := renderer.Err(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
