package main

import (
	"fmt"

	"packsmith/cmd/packsmith/mc"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every resource the pack sources declare",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := load(flagFiles, flagIncludes)
		if err != nil {
			return err
		}
		printResources(reg)
		return nil
	},
}

var kindStyles = map[mc.Kind]lipgloss.Style{
	mc.KindFunction:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	mc.KindAdvancement: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	mc.KindLootTable:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	mc.KindPredicate:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	mc.KindRecipe:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	mc.KindTag:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// printResources prints all resources aligned: identifier, kind, file.
func printResources(reg *mc.Registry) {
	resources := reg.Resources()
	if len(resources) == 0 {
		fmt.Println("no resources found")
		return
	}

	maxLen := 0
	for _, res := range resources {
		if n := len(res.ID().String()); n > maxLen {
			maxLen = n
		}
	}

	for _, res := range resources {
		kind := res.Kind().String()
		if style, ok := kindStyles[res.Kind()]; ok {
			kind = style.Render(kind)
		}
		fmt.Printf("%-*s  [%s]  %s\n", maxLen, res.ID(), kind, res.File())
	}
}
