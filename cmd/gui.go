package cmd

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/seclabx-org/portal/pkg/config"
	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/seclabx-org/portal/pkg/viewer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Show the sphere in a fyne window",
	Long:  "Open a fyne window with the animated sphere and a theme toggle. Works with mouse and touch.",
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

// themeButtonLabel names the theme the button switches to
func themeButtonLabel(current sphere.Theme) string {
	if current == sphere.Dark {
		return "☀ Light"
	}
	return "☾ Dark"
}

func runGUI(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	a := fyneapp.NewWithID("cn.seclabx.portal")
	w := a.NewWindow("SeclabX Portal")

	sphereView := viewer.NewSphereWidget(
		sphere.DefaultLabels(),
		sphere.DefaultParams(),
		settings.ThemeValue(),
		settings.FPS,
		logger,
	)

	themeButton := widget.NewButton(themeButtonLabel(sphereView.Theme()), nil)
	setTheme := func(theme sphere.Theme) {
		sphereView.SetTheme(theme)
		themeButton.SetText(themeButtonLabel(theme))
	}
	themeButton.OnTapped = func() {
		setTheme(sphereView.Theme().Toggle())
	}

	toolbar := container.NewHBox(layout.NewSpacer(), themeButton)
	w.SetContent(container.NewStack(
		sphereView,
		container.NewVBox(toolbar),
	))

	ctx := cmd.Context()
	if configPath != "" {
		fw, err := config.Watch(ctx, configPath, logger, func(s config.Settings) {
			s = applyFlags(cmd, s)
			fyne.Do(func() { setTheme(s.ThemeValue()) })
		})
		if err != nil {
			logger.Warn("settings will not be reloaded", zap.Error(err))
		} else {
			defer fw.Close()
		}
	}

	go func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	}()

	w.SetOnClosed(sphereView.Stop)
	w.Resize(fyne.NewSize(float32(settings.Window.Width), float32(settings.Window.Height)))

	if err := sphereView.Start(); err != nil {
		return err
	}
	logger.Info("gui started", zap.Stringer("theme", sphereView.Theme()), zap.Int("fps", settings.FPS))

	w.ShowAndRun()
	return nil
}
