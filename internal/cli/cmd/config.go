package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtip/internal/application/usecase"
	"github.com/bnema/dumbtip/internal/cli/styles"
	"github.com/bnema/dumbtip/internal/infrastructure/config"
)

var (
	configStatusJSON    bool
	configStatusSection string
	configInitForce     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the resolved configuration, write a default config file or print its JSON schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the config file and resolved values",
	Long: `Display the config file path and every configuration key with its
resolved value. Values differing from the default are highlighted.
DUMBTIP_* environment variables are taken into account.`,
	Args: cobra.NoArgs,
	RunE: runConfigStatus,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and its schema",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configStatusCmd.Flags().BoolVar(&configStatusJSON, "json", false, "print as JSON")
	configStatusCmd.Flags().StringVar(&configStatusSection, "section", "",
		"only show one section (Tooltip, Logging, Playground)")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

// sectionOrder is the display order of config sections.
var sectionOrder = []string{config.SectionTooltip, config.SectionLogging, config.SectionPlayground}

func runConfigStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configStatusSection})
	if err != nil {
		return err
	}
	if len(out.Keys) == 0 {
		return fmt.Errorf("unknown section %q", configStatusSection)
	}

	current := make(map[string]string, len(out.Keys))
	for _, k := range out.Keys {
		current[k.Key] = fmt.Sprint(app.ConfigManager.Value(k.Key))
	}

	schema := styles.NewConfigSchemaRenderer(app.Theme)
	if configStatusJSON {
		js, err := schema.RenderJSON(out.Keys, current)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), js)
		return nil
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.ConfigManager.GetConfigFile()
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfigFile(path, app.ConfigManager.ConfigFileUsed() != ""))
	if app.LoadErr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(app.LoadErr))
	}
	fmt.Fprintln(cmd.OutOrStdout(), schema.Render(out.Keys, orderSections(out.Sections), current))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.ConfigManager.GetConfigFile()
	if _, err := os.Stat(path); err == nil && !configInitForce {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderExists(path))
		return nil
	}

	if err := app.ConfigManager.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten("config", path))

	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	schemaPath, err := config.WriteSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten("schema", schemaPath))
	return nil
}

// orderSections sorts sections by sectionOrder; unknown sections go last.
func orderSections(sections []string) []string {
	out := slices.Clone(sections)
	rank := func(s string) int {
		if i := slices.Index(sectionOrder, s); i >= 0 {
			return i
		}
		return len(sectionOrder)
	}
	slices.SortStableFunc(out, func(a, b string) int { return rank(a) - rank(b) })
	return out
}
