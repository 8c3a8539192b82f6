package main

import "github.com/spf13/cobra"

var (
	flagFiles    []string
	flagIncludes []string
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Author and build game datapacks from YAML sources",
	Long: "Author and build game datapacks from YAML sources.\n\n" +
		"Pack sources declare functions, tags, advancements, loot tables,\n" +
		"predicates and recipes; " + appName + " resolves every resource name,\n" +
		"encodes every target selector, and writes the exact tree the game loads.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&flagFiles, "file", "f", nil,
		"pack source YAML file (repeatable; default: ~/.config/"+appName+"/packs/*.yml)")
	rootCmd.PersistentFlags().StringArrayVar(&flagIncludes, "include", nil,
		"doublestar glob of pack sources, e.g. 'packs/**/*.yml' (repeatable)")
}
