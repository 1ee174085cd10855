// Package scenario runs the canonical adapter demonstration.
package scenario

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/olehluchkiv/birdadapter/internal/bird"
)

// Section headers printed before each entity's signals.
const (
	HeaderSparrow = "Sparrow..."
	HeaderToyDuck = "Toy Duck..."
	HeaderAdapter = "Bird Adapter..."
)

// Options controls how the scenario is printed.
type Options struct {
	Color bool // render headers in bold; signal lines are never styled
}

// Run writes the canonical run to w: a sparrow flies and sings, a toy duck
// squeaks, and the sparrow squeaks through a BirdAdapter.
func Run(w io.Writer, opts Options, logger *slog.Logger) {
	header := headerPrinter(w, opts)

	sparrow := bird.NewSparrow(w)
	toyDuck := bird.NewPlayDuck(w)

	// wrap the sparrow so it can be handed out as a toy duck
	var adapter bird.ToyDuck = bird.NewBirdAdapter(sparrow)

	header(HeaderSparrow)
	logger.Debug("sparrow", "op", "Fly")
	sparrow.Fly()
	logger.Debug("sparrow", "op", "MakeSound")
	sparrow.MakeSound()

	header(HeaderToyDuck)
	logger.Debug("toy duck", "op", "Squeak")
	toyDuck.Squeak()

	header(HeaderAdapter)
	logger.Debug("bird adapter", "op", "Squeak", "delegates_to", "MakeSound")
	adapter.Squeak()

	logger.Debug("scenario complete")
}

// Lines returns the output Run produces with color disabled.
func Lines() []string {
	return []string{
		HeaderSparrow,
		bird.SparrowFly,
		bird.SparrowSound,
		HeaderToyDuck,
		bird.PlayDuckSqueak,
		HeaderAdapter,
		bird.SparrowSound,
	}
}

func headerPrinter(w io.Writer, opts Options) func(string) {
	if !opts.Color {
		return func(s string) { _, _ = fmt.Fprintln(w, s) }
	}
	c := color.New(color.Bold)
	c.EnableColor()
	return func(s string) { _, _ = c.Fprintln(w, s) }
}
