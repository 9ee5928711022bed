package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ui "github.com/grindlemire/go-ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	runFPS     int
	runTimeout time.Duration

	viewWidth  float64
	viewHeight float64
	scrollX    float64
	scrollY    float64

	scrollIndex   int
	scrollNearest bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Build the scenario on a live frame loop and report the first frame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := LoadScenario(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
		defer cancel()
		report, err := runScenario(ctx, s, runFPS)
		if err != nil {
			return err
		}
		return report.Render(cmd.OutOrStdout(), labelWidth())
	},
}

var visibleCmd = &cobra.Command{
	Use:   "visible <scenario.yaml>",
	Short: "Print the item indices a virtual scenario keeps live",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := LoadScenario(args[0])
		if err != nil {
			return err
		}
		indices, err := visibleIndices(s, cmd)
		if err != nil {
			return err
		}
		return writeIndices(cmd.OutOrStdout(), indices)
	},
}

var scrollCmd = &cobra.Command{
	Use:   "scroll <scenario.yaml>",
	Short: "Print the scroll position that brings an item into view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := LoadScenario(args[0])
		if err != nil {
			return err
		}
		x, y, err := scrollPosition(s, cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", num(x), num(y))
		return err
	},
}

func init() {
	runCmd.Flags().IntVar(&runFPS, "fps", 60, "frame rate of the frame loop")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 5*time.Second, "give up if the first frame has not completed")

	for _, cmd := range []*cobra.Command{visibleCmd, scrollCmd} {
		cmd.Flags().Float64Var(&viewWidth, "viewport-width", 0, "viewport width (default: scenario width)")
		cmd.Flags().Float64Var(&viewHeight, "viewport-height", 0, "viewport height (default: scenario height)")
		cmd.Flags().Float64Var(&scrollX, "scroll-x", 0, "horizontal scroll offset (default: scenario scroll)")
		cmd.Flags().Float64Var(&scrollY, "scroll-y", 0, "vertical scroll offset (default: scenario scroll)")
	}
	scrollCmd.Flags().IntVar(&scrollIndex, "index", 0, "item index to scroll to")
	scrollCmd.Flags().BoolVar(&scrollNearest, "nearest", false, "scroll the least amount instead of aligning")
}

// runScenario builds s on a Stage of a running FrameSurface and returns the
// state after the first validation pass.
func runScenario(ctx context.Context, s *Scenario, fps int) (Report, error) {
	surface, err := ui.NewFrameSurface(ui.WithFrameRate(fps))
	if err != nil {
		return Report{}, err
	}

	var report Report
	done := make(chan struct{})
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := surface.Run(ctx)
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("scenario %q did not complete a frame: %w", s.Name, err)
		}
		return err
	})
	g.Go(func() error {
		surface.QueueUpdate(func() {
			stage := ui.NewStage(ui.NewRegistry(), surface)
			container := s.Build()
			stage.AddChild(container)
			// Registered after the stage's queue, so it runs once the
			// frame's validation pass is over.
			var cancel func()
			cancel = surface.OnTick(func(time.Duration) {
				cancel()
				report = snapshot(container)
				stage.Dispose()
				close(done)
				surface.Stop()
			})
		})
		select {
		case <-done:
		case <-ctx.Done():
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return report, nil
}

// viewport returns the viewport and scroll offsets for a query, preferring
// flags over scenario values.
func viewport(s *Scenario, cmd *cobra.Command) (w, h, sx, sy float64) {
	b := s.ViewPortBounds()
	w, h = b.ExplicitWidth.Or(0), b.ExplicitHeight.Or(0)
	sx, sy = b.ScrollX, b.ScrollY
	flags := cmd.Flags()
	if flags.Changed("viewport-width") {
		w = viewWidth
	}
	if flags.Changed("viewport-height") {
		h = viewHeight
	}
	if flags.Changed("scroll-x") {
		sx = scrollX
	}
	if flags.Changed("scroll-y") {
		sy = scrollY
	}
	return w, h, sx, sy
}

func visibleIndices(s *Scenario, cmd *cobra.Command) ([]int, error) {
	l := s.Linear()
	count := 0
	if s.Virtual != nil {
		count = s.Virtual.Count
	}
	w, h, sx, sy := viewport(s, cmd)
	return l.VisibleIndices(sx, sy, w, h, count)
}

func scrollPosition(s *Scenario, cmd *cobra.Command) (float64, float64, error) {
	l := s.Linear()
	items := s.items()
	l.Layout(items, s.ViewPortBounds())

	w, h, sx, sy := viewport(s, cmd)
	if scrollNearest {
		return l.NearestScrollPositionForIndex(scrollIndex, items, sx, sy, w, h)
	}
	return l.ScrollPositionForIndex(scrollIndex, items, w, h)
}

// items returns standalone layout items for the scenario: one box per item
// spec, or one nil placeholder per virtual index.
func (s *Scenario) items() []ui.LayoutChild {
	if s.Virtual != nil {
		return make([]ui.LayoutChild, s.Virtual.Count)
	}
	items := make([]ui.LayoutChild, 0, len(s.Items))
	for i, spec := range s.Items {
		items = append(items, spec.build(i))
	}
	return items
}

func writeIndices(out io.Writer, indices []int) error {
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = strconv.Itoa(index)
	}
	_, err := fmt.Fprintln(out, strings.Join(parts, " "))
	return err
}
