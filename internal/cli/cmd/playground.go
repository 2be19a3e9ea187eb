package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbtip/internal/cli/model"
	"github.com/bnema/dumbtip/internal/infrastructure/config"
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Hover tooltips with the mouse in the terminal",
	Long: `Open an interactive document with demo hosts. Hovering a host with the
mouse shows its tooltip after the configured delay; only one tooltip is
visible at a time. Scroll with the arrow keys, page keys or the wheel to
watch tooltips flip near the edges.

The config file is watched: saving it rebuilds every tooltip. Press r to
reload by hand and q to quit. Logs go to the playground log file in the
XDG state directory.`,
	Args: cobra.NoArgs,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logFile, err := config.GetPlaygroundLogFile()
	if err != nil {
		return err
	}
	if err := app.LogToFile(logFile); err != nil {
		return fmt.Errorf("open playground log: %w", err)
	}
	log := app.Logger()

	var program *tea.Program
	m := model.NewPlaygroundModel(app.Ctx(), model.PlaygroundOptions{
		Config: app.Config,
		Send:   func(msg tea.Msg) { program.Send(msg) },
		// subscribers below receive the new config
		Reload: func() (*config.Config, error) {
			return nil, app.ConfigManager.Reload()
		},
	})
	defer m.Close()
	program = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	app.ConfigManager.OnConfigChange(m.ConfigChanged)
	if app.ConfigManager.ConfigFileUsed() != "" {
		if err := app.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	log.Info().Str("log_file", logFile).Msg("playground started")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	log.Info().Msg("playground stopped")
	return nil
}
