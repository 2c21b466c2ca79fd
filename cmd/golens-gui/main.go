package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/golens/internal/config"
	"github.com/philipparndt/golens/internal/preset"
	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/pkg/optics"
	"github.com/philipparndt/golens/pkg/viewer"
	"github.com/philipparndt/golens/pkg/watcher"
	"github.com/philipparndt/golens/version"
	"github.com/spf13/cobra"
)

type App struct {
	window  fyne.Window
	cfg     diagram.Config
	logger  *slog.Logger
	diagram *viewer.DiagramWidget
	layout  diagram.Layout
	info    *InfoPanel

	presetFile string
	watcher    *watcher.Watcher
}

// InfoPanel shows the optics readouts next to the diagram
type InfoPanel struct {
	presetLabel  *widget.Label
	readoutLabel *widget.Label
	statusLabel  *widget.Label
}

var (
	presetFile string
	watchFlag  bool
)

var rootCmd = &cobra.Command{
	Use:     "golens-gui [preset]",
	Short:   "Thin-lens ray diagram (desktop UI)",
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetFullVersion(),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVarP(&presetFile, "preset", "p", "", "YAML preset with the starting layout")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload the preset when it changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Preset = args[0]
	}
	if cmd.Flags().Changed("preset") {
		cfg.Preset = presetFile
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = watchFlag
	}

	diagramCfg, err := cfg.Diagram()
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("GoLens - Thin Lens Ray Diagram")

	appInstance := &App{
		window:     w,
		cfg:        diagramCfg,
		logger:     cfg.NewLogger(os.Stderr),
		layout:     diagram.DefaultLayout(diagramCfg),
		presetFile: cfg.Preset,
	}

	var name string
	if cfg.Preset != "" {
		p, err := preset.Load(cfg.Preset, diagramCfg)
		if err != nil {
			return err
		}
		appInstance.layout = p.Layout
		name = p.Name
	}
	appInstance.setupUI(name)

	if cfg.Watch && cfg.Preset != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := appInstance.watchPreset(ctx); err != nil {
			appInstance.logger.Warn("auto-reload disabled", "err", err)
		} else {
			defer appInstance.watcher.Close()
		}
	}

	w.Resize(fyne.NewSize(float32(diagramCfg.Width)+300, float32(diagramCfg.Height)+60))
	w.ShowAndRun()
	return nil
}

func (a *App) setupUI(presetName string) {
	a.info = &InfoPanel{
		presetLabel:  widget.NewLabel(presetTitle(presetName)),
		readoutLabel: widget.NewLabel(""),
		statusLabel:  widget.NewLabel(""),
	}
	a.info.presetLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.info.readoutLabel.TextStyle = fyne.TextStyle{Monospace: true}
	a.info.statusLabel.Wrapping = fyne.TextWrapWord

	a.diagram = viewer.NewDiagramWidget(a.cfg, a.layout, a.logger)
	a.diagram.SetOnChange(a.updateInfo)

	resetButton := widget.NewButton("Reset", func() {
		a.diagram.Reset(a.layout)
	})
	openButton := widget.NewButton("Open Preset", func() {
		a.showPresetDialog()
	})

	instructions := widget.NewLabel(
		"Drag the black point to move the object.\n" +
			"Drag the red point along the axis to change the focal length. " +
			"Left of the lens is converging, right is diverging.")
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		a.info.presetLabel,
		widget.NewSeparator(),
		widget.NewLabel("Optics:"),
		a.info.readoutLabel,
		widget.NewSeparator(),
		container.NewHBox(resetButton, openButton),
		widget.NewSeparator(),
		instructions,
		a.info.statusLabel,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, container.NewScroll(a.diagram))
	a.window.SetContent(content)
}

// updateInfo refreshes the readouts from the latest diagram state
func (a *App) updateInfo(state diagram.State) {
	if a.info == nil {
		return
	}

	var lines []string
	for _, r := range optics.Describe(state.Optics, a.cfg.GridSpacing) {
		lines = append(lines, r.String())
	}
	switch {
	case state.OnLensPlane:
		lines = append(lines, "", "Object on lens plane: no image")
	case state.AtFocalPoint:
		lines = append(lines, "", "Object at a focal point: image at infinity")
	}
	a.info.readoutLabel.SetText(strings.Join(lines, "\n"))
}

func (a *App) showPresetDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		a.presetFile = path
		a.loadPreset()
	}, a.window)
}

// loadPreset reads the current preset file and resets the diagram to it
func (a *App) loadPreset() {
	p, err := preset.Load(a.presetFile, a.cfg)
	if err != nil {
		a.info.statusLabel.SetText(fmt.Sprintf("Preset error: %v", err))
		a.logger.Warn("preset load failed", "err", err)
		return
	}

	a.layout = p.Layout
	a.info.presetLabel.SetText(presetTitle(p.Name))
	a.info.statusLabel.SetText("")
	a.diagram.Reset(p.Layout)
}

// watchPreset reloads the preset on the UI goroutine whenever it changes
func (a *App) watchPreset(ctx context.Context) error {
	fw, err := watcher.New(a.presetFile, watcher.DefaultDebounce, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw.Start(ctx, func(path string) {
		a.logger.Info("preset changed", "path", path)
		fyne.Do(a.loadPreset)
	})
	a.watcher = fw
	return nil
}

func presetTitle(name string) string {
	if name == "" {
		return "Thin lens"
	}
	return name
}
