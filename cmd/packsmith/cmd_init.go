package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

const initPackHeader = "# " + appName + " pack source\n" +
	"# ─────────────────────────────────────────────────────────────────────────────\n" +
	"# Declare your pack here. Run `" + appName + " list` to see every resource,\n" +
	"# `" + appName + " build --dry-run` to preview the tree, `" + appName + " build` to write it.\n" +
	"# ─────────────────────────────────────────────────────────────────────────────\n\n"

const initPackTemplate = `pack:
  name: %s
  description: %s
  format: 48
  namespace: %s

functions:
  greet:
    commands:
      - say hello from %s
      - tp {{ sel.nearby }} ~ ~1 ~
    selectors:
      nearby:
        target: "@a"
        distance: "..16"

tags:
  function:
    load:
      values: [%s:greet]
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialise the " + appName + " config directory with a starter pack",
	Long: "Create the " + appName + " config directory structure and write a starter\n" +
		"pack source. Missing details are asked for interactively.\n\n" +
		"The default config directory follows the same priority as every command:\n" +
		"  $PACKSMITH_CONFIG_DIR > $XDG_CONFIG_HOME/" + appName + " > ~/.config/" + appName,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		namespace, _ := cmd.Flags().GetString("namespace")
		description, _ := cmd.Flags().GetString("description")
		force, _ := cmd.Flags().GetBool("force")
		dir, _ := cmd.Flags().GetString("dir")

		if dir == "" {
			var err error
			dir, err = resolveConfigDir()
			if err != nil {
				return err
			}
		}

		if name == "" || namespace == "" {
			if err := promptPackDetails(&name, &namespace, &description); err != nil {
				return err
			}
		}
		if description == "" {
			description = name
		}

		packsDir := filepath.Join(dir, "packs")
		if err := os.MkdirAll(packsDir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", packsDir, err)
		}

		packFile := filepath.Join(packsDir, "pack.yml")
		content := fmt.Sprintf(initPackTemplate, name, description, namespace, name, namespace)
		if err := writeInitFile(packFile, initPackHeader, []byte(content), force); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "initialised %s\n", dir)
		fmt.Fprintf(os.Stderr, "  %s\n", packFile)
		fmt.Fprintf(os.Stderr, "\nRun `%s list` to see the declared resources.\n", appName)
		return nil
	},
}

// promptPackDetails asks for the missing pack details interactively.
func promptPackDetails(name, namespace, description *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pack name").
				Description("Used as the default output directory").
				Value(name),
			huh.NewInput().
				Title("Namespace").
				Description("Lowercase letters, digits, _ and - only").
				Value(namespace),
			huh.NewInput().
				Title("Description").
				Value(description),
		),
	)
	return form.Run()
}

func writeInitFile(path, header string, content []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	fmt.Fprint(f, header)
	_, err = f.Write(content)
	return err
}

func init() {
	initCmd.Flags().String("name", "", "pack name")
	initCmd.Flags().String("namespace", "", "pack namespace")
	initCmd.Flags().String("description", "", "pack description")
	initCmd.Flags().Bool("force", false, "overwrite existing files")
	initCmd.Flags().String("dir", "", "target config directory (default: auto-resolved)")
}
