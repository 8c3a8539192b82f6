package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed cmd_example_pack.yml
var examplePackYAML []byte

const exampleHeader = `# ` + appName + ` — source reference
# ─────────────────────────────────────────────────────────────────────────────
# This file demonstrates every feature of the pack source format.
# List it with:    ` + appName + ` --file <this-file> list
# Preview it with: ` + appName + ` --file <this-file> build --dry-run
# ─────────────────────────────────────────────────────────────────────────────

`

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a reference pack source covering all source features",
	Long: "Print a " + appName + " YAML pack source that demonstrates every feature\n" +
		"of the source format. Use --output to write to a file instead of stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		w := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			w = f
		}

		fmt.Fprint(w, exampleHeader)
		w.Write(examplePackYAML)

		if output != "" {
			fmt.Fprintf(os.Stderr, "written to %s\n", output)
		}
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}
