package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/seclabx-org/portal/internal/logging"
	"github.com/seclabx-org/portal/pkg/config"
	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/seclabx-org/portal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	darkTheme  bool
	verbose    bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "seclabx",
	Short: "Interactive SeclabX label sphere",
	Long: `seclabx renders the SeclabX hero sphere: labels spread evenly over a
rotating sphere, connected to their neighbours, drawn back to front.
Drag to spin it; it eases back to its idle spin when released.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (TOML), reloaded on change")
	rootCmd.PersistentFlags().BoolVar(&darkTheme, "dark", false, "use the dark theme (overrides the settings file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadSettings reads the settings file and applies --dark when given
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, err
	}
	return applyFlags(cmd, settings), nil
}

// applyFlags overrides settings with the flags given on the command line.
// Reloaded settings pass through it too, so flags keep precedence.
func applyFlags(cmd *cobra.Command, settings config.Settings) config.Settings {
	if cmd.Flags().Changed("dark") {
		theme := sphere.Light
		if darkTheme {
			theme = sphere.Dark
		}
		settings.Theme = theme.String()
	}
	return settings
}
