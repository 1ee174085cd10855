// Package bird holds two unrelated capability interfaces and the adapter
// that lets a Bird stand in wherever a ToyDuck is expected.
package bird

import (
	"fmt"
	"io"
)

// Signal lines emitted by the concrete entities.
const (
	SparrowFly     = "Flying..."
	SparrowSound   = "Chirp..Chirp..."
	SongbirdFly    = "Bird Flying..."
	SongbirdSound  = "Bird chirp...chirp.."
	PlayDuckSqueak = "Squeak..."
)

// Bird can fly and make a sound. Each call emits exactly one signal.
type Bird interface {
	Fly()
	MakeSound()
}

// Sparrow is a Bird that writes its signals to out.
type Sparrow struct {
	out io.Writer
}

// NewSparrow returns a Sparrow emitting to out.
func NewSparrow(out io.Writer) *Sparrow {
	return &Sparrow{out: out}
}

func (s *Sparrow) Fly()       { emit(s.out, SparrowFly) }
func (s *Sparrow) MakeSound() { emit(s.out, SparrowSound) }

// Songbird is a second Bird with its own sounds.
type Songbird struct {
	out io.Writer
}

func NewSongbird(out io.Writer) *Songbird {
	return &Songbird{out: out}
}

func (s *Songbird) Fly()       { emit(s.out, SongbirdFly) }
func (s *Songbird) MakeSound() { emit(s.out, SongbirdSound) }

// emit writes one signal line. Write errors are dropped.
func emit(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}
