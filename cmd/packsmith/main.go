package main

import (
	"packsmith/pkg/lib"
)

func main() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(exampleCmd)

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	lib.Exit(rootCmd.Execute())
}
