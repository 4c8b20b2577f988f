// Command pboread extracts the files packed inside a PBO archive, matching
// original_source/pbo_read.c's CLI contract: creates a directory named
// after the input file's basename (extension stripped) and populates it
// with the extracted files, exit 0 on success.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cotillion/ofptools/pkg/pbo"
	"github.com/spf13/cobra"
)

var (
	readVerbose bool
	readOutput  string
)

var rootCmd = &cobra.Command{
	Use:   "pboread <pbofile>",
	Short: "Extract files packed inside a PBO archive",
	Long: `pboread parses an Operation Flashpoint-era PBO archive's table of
contents and extracts every entry to disk, decompressing packed entries
and verifying their trailing checksum along the way.`,
	Args: cobra.ExactArgs(1),
	RunE: runPboread,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().BoolVarP(&readVerbose, "verbose", "v", false,
		"print per-entry progress information")
	rootCmd.Flags().StringVarP(&readOutput, "output", "o", "",
		"output directory (default: input file's basename, extension stripped)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPboread(cmd *cobra.Command, args []string) error {
	path := args[0]

	outDir := readOutput
	if outDir == "" {
		base := filepath.Base(path)
		outDir = strings.TrimSuffix(base, filepath.Ext(base))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	archive, err := pbo.ReadTOC(f)
	if err != nil {
		return fmt.Errorf("failed to read table of contents: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Output directory: %s\n", outDir)
	fmt.Printf("Files: %d\n", len(archive.Entries))
	if archive.ProductVersion != "" {
		fmt.Printf("Product: %s\n", archive.ProductVersion)
	}
	fmt.Println()

	writer := pbo.NewFileWriter(outDir)

	for i := range archive.Entries {
		entry := &archive.Entries[i]
		if entry.Filename == "" {
			continue
		}

		data, err := pbo.Unpack(f, archive, entry, pbo.ChecksumInclusive)
		if err != nil && err != pbo.ErrChecksumMismatch {
			return fmt.Errorf("failed to unpack %q: %w", entry.Filename, err)
		}
		if err == pbo.ErrChecksumMismatch {
			fmt.Fprintf(os.Stderr, "warning: checksum mismatch for %q\n", entry.Filename)
		}

		if err := writer.WriteFile(entry.Filename, data); err != nil {
			return fmt.Errorf("failed to write %q: %w", entry.Filename, err)
		}

		if readVerbose {
			fmt.Printf("  %s (%d bytes)\n", entry.Filename, len(data))
		}
	}

	fmt.Println("Extraction complete!")
	return nil
}
