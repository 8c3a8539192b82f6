package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse declared resources in an interactive table",
	RunE: func(cmd *cobra.Command, args []string) error {
		pack, reg, err := load(flagFiles, flagIncludes)
		if err != nil {
			return err
		}
		resources := reg.Resources()
		if len(resources) == 0 {
			return fmt.Errorf("no resources found")
		}

		p := tea.NewProgram(newBrowseModel(pack.Name, resources))
		_, err = p.Run()
		return err
	},
}
