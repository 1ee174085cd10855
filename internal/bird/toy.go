package bird

import "io"

// ToyDuck can only squeak.
type ToyDuck interface {
	Squeak()
}

// PlayDuck is a ToyDuck that writes its squeak to out.
type PlayDuck struct {
	out io.Writer
}

func NewPlayDuck(out io.Writer) *PlayDuck {
	return &PlayDuck{out: out}
}

func (d *PlayDuck) Squeak() { emit(d.out, PlayDuckSqueak) }
