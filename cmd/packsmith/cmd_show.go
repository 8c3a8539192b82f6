package main

import (
	"fmt"
	"os"

	"packsmith/cmd/packsmith/mc"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [identifier]",
	Short: "Print a resource's rendered file body",
	Long: "Print a resource's rendered file body.\n\n" +
		"With no argument, opens a fuzzy finder over every declared resource.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := load(flagFiles, flagIncludes)
		if err != nil {
			return err
		}
		resources := reg.Resources()
		if len(resources) == 0 {
			return fmt.Errorf("no resources found")
		}

		var res *mc.Resource
		if len(args) == 1 {
			res = findByID(resources, args[0])
			if res == nil {
				return fmt.Errorf("resource %q not found", args[0])
			}
		} else {
			res, err = fzfResource(resources)
			if err != nil {
				return err
			}
		}

		body, err := res.Render()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "# %s %s → %s\n", res.Kind(), res.ID(), res.File())
		_, err = os.Stdout.Write(body)
		return err
	},
}

func findByID(resources []*mc.Resource, id string) *mc.Resource {
	for _, res := range resources {
		if res.ID().String() == id {
			return res
		}
	}
	return nil
}

// fzfResource lets the user pick a resource interactively in the terminal.
func fzfResource(resources []*mc.Resource) (*mc.Resource, error) {
	idx, err := fuzzyfinder.Find(
		resources,
		func(i int) string {
			return fmt.Sprintf("%s  [%s]", resources[i].ID(), resources[i].Kind())
		},
		fuzzyfinder.WithPromptString("Select resource: "),
	)
	if err != nil {
		return nil, err
	}
	return resources[idx], nil
}
