package main

import (
	"fmt"
	"os"

	"packsmith/cmd/packsmith/emit"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the datapack tree from the pack sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		force, _ := cmd.Flags().GetBool("force")

		pack, reg, err := load(flagFiles, flagIncludes)
		if err != nil {
			return err
		}
		if output == "" {
			output = pack.Name
		}
		meta := emit.Meta{Name: pack.Name, Description: pack.Description, Format: pack.Format}

		if dryRun {
			return emit.DryRun(os.Stdout, output, meta, reg)
		}

		artifacts, err := emit.Write(output, meta, reg, force)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d files to %s\n", len(artifacts), output)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output directory (default: the pack name)")
	buildCmd.Flags().Bool("dry-run", false, "print what would be written without writing anything")
	buildCmd.Flags().Bool("force", false, "overwrite existing files")
}
