package cmd

import (
	"github.com/seclabx-org/portal/internal/app"
	"github.com/seclabx-org/portal/pkg/config"
	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the sphere in a native raylib window",
	Long:  "Open a raylib window with the animated sphere. Drag to spin, T toggles the theme.",
	Args:  cobra.NoArgs,
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

// publishLatest replaces any theme still waiting in ch with theme
func publishLatest(ch chan sphere.Theme, theme sphere.Theme) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- theme:
	default:
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	themes := make(chan sphere.Theme, 1)
	if configPath != "" {
		fw, err := config.Watch(ctx, configPath, logger, func(s config.Settings) {
			publishLatest(themes, applyFlags(cmd, s).ThemeValue())
		})
		if err != nil {
			logger.Warn("settings will not be reloaded", zap.Error(err))
		} else {
			defer fw.Close()
		}
	}

	return app.Run(ctx, app.Options{
		Title:        "SeclabX",
		Width:        settings.Window.Width,
		Height:       settings.Window.Height,
		FPS:          settings.FPS,
		Theme:        settings.ThemeValue(),
		Labels:       sphere.DefaultLabels(),
		Params:       sphere.DefaultParams(),
		ThemeUpdates: themes,
	}, logger)
}
