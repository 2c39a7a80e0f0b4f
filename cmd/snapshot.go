package cmd

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/seclabx-org/portal/pkg/sphere"
	"github.com/seclabx-org/portal/pkg/viewer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	snapshotOut      string
	snapshotFrames   int
	snapshotEvery    int
	snapshotWidth    int
	snapshotHeight   int
	snapshotDrag     string
	snapshotDragHold int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render sphere frames to PNG files",
	Long: `Simulate the sphere without a window and write every n-th frame as a PNG.
--drag x1,y1,x2,y2 presses at the first point on frame 1, moves to the second
and releases after --drag-hold frames.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	f := snapshotCmd.Flags()
	f.StringVarP(&snapshotOut, "out", "o", ".", "output directory")
	f.IntVarP(&snapshotFrames, "frames", "n", 0, "frames to simulate (default from settings)")
	f.IntVar(&snapshotEvery, "every", 0, "write every n-th frame (default from settings)")
	f.IntVar(&snapshotWidth, "width", 0, "image width (default from settings)")
	f.IntVar(&snapshotHeight, "height", 0, "image height (default from settings)")
	f.StringVar(&snapshotDrag, "drag", "", "scripted drag x1,y1,x2,y2")
	f.IntVar(&snapshotDragHold, "drag-hold", 10, "frames the scripted drag is held")
	rootCmd.AddCommand(snapshotCmd)
}

// snapshotOptions is everything renderSnapshots needs
type snapshotOptions struct {
	Dir    string
	Frames int
	Every  int
	Width  int
	Height int
	Theme  sphere.Theme
	Drag   *scriptedDrag
	Labels []string
	Params sphere.Params
}

// scriptedDrag is a press-move-release sequence starting on frame 1
type scriptedDrag struct {
	From sphere.Pointer
	To   sphere.Pointer
	Hold int
}

// parseDrag parses "x1,y1,x2,y2"
func parseDrag(s string) (sphere.Pointer, sphere.Pointer, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return sphere.Pointer{}, sphere.Pointer{}, fmt.Errorf("drag %q: want x1,y1,x2,y2", s)
	}

	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return sphere.Pointer{}, sphere.Pointer{}, fmt.Errorf("drag %q: %w", s, err)
		}
		v[i] = f
	}
	return sphere.Pointer{X: v[0], Y: v[1]}, sphere.Pointer{X: v[2], Y: v[3]}, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := snapshotOptions{
		Dir:    snapshotOut,
		Frames: settings.Snapshot.Frames,
		Every:  settings.Snapshot.Every,
		Width:  settings.Snapshot.Width,
		Height: settings.Snapshot.Height,
		Theme:  settings.ThemeValue(),
		Labels: sphere.DefaultLabels(),
		Params: sphere.DefaultParams(),
	}

	flags := cmd.Flags()
	if flags.Changed("frames") {
		opts.Frames = snapshotFrames
	}
	if flags.Changed("every") {
		opts.Every = snapshotEvery
	}
	if flags.Changed("width") {
		opts.Width = snapshotWidth
	}
	if flags.Changed("height") {
		opts.Height = snapshotHeight
	}
	if snapshotDrag != "" {
		from, to, err := parseDrag(snapshotDrag)
		if err != nil {
			return err
		}
		opts.Drag = &scriptedDrag{From: from, To: to, Hold: snapshotDragHold}
	}

	written, err := renderSnapshots(cmd.Context(), opts, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", len(written), opts.Dir)
	return nil
}

// renderSnapshots simulates opts.Frames frames and writes every opts.Every-th
// one as frame-NNNN.png. Rendering is sequential; encoding runs in parallel.
func renderSnapshots(ctx context.Context, opts snapshotOptions, log *zap.Logger) ([]string, error) {
	if opts.Frames < 1 || opts.Every < 1 {
		return nil, errors.New("frames and every must be at least 1")
	}
	if opts.Drag != nil && opts.Drag.Hold < 1 {
		return nil, fmt.Errorf("drag hold must be at least 1 frame, got %d", opts.Drag.Hold)
	}

	r, err := sphere.NewRenderer(float64(opts.Width), float64(opts.Height), opts.Labels, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("snapshot size %dx%d: %w", opts.Width, opts.Height, err)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.Dir, err)
	}

	surface := viewer.NewImageSurface(opts.Width, opts.Height, sphere.PaletteFor(opts.Theme).Background)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	var written []string
	for frame := 1; frame <= opts.Frames; frame++ {
		if ctx.Err() != nil {
			break
		}
		if opts.Drag != nil {
			applyDrag(r.Motion(), opts.Drag, frame)
		}

		r.Frame(surface, opts.Theme)

		if frame%opts.Every != 0 {
			continue
		}
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame-%04d.png", frame))
		img := surface.Snapshot()
		written = append(written, path)
		g.Go(func() error {
			return writePNG(path, img)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("snapshots written",
		zap.String("dir", opts.Dir),
		zap.Int("frames", opts.Frames),
		zap.Int("files", len(written)))
	return written, nil
}

// applyDrag plays the scripted drag: press and move on frame 1, release
// once the hold is over
func applyDrag(m *sphere.Motion, d *scriptedDrag, frame int) {
	switch {
	case frame == 1:
		m.Press(d.From)
		m.Move(d.To)
	case frame >= 1+d.Hold && m.Dragging():
		m.Release()
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
