package bird

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(buf *bytes.Buffer) []string {
	s := strings.TrimRight(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// echoBird is a test double: its sound is whatever it was given.
type echoBird struct {
	out   io.Writer
	sound string
}

func (e *echoBird) Fly()       { emit(e.out, "echo flying") }
func (e *echoBird) MakeSound() { emit(e.out, e.sound) }

func TestSparrow_EachCallEmitsOneLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSparrow(&buf)

	s.Fly()
	assert.Equal(t, []string{SparrowFly}, lines(&buf))

	buf.Reset()
	s.MakeSound()
	assert.Equal(t, []string{SparrowSound}, lines(&buf))
}

func TestSparrow_OrderIndependent(t *testing.T) {
	var a, b bytes.Buffer

	first := NewSparrow(&a)
	first.Fly()
	first.MakeSound()

	second := NewSparrow(&b)
	second.MakeSound()
	second.Fly()

	assert.Equal(t, []string{SparrowFly, SparrowSound}, lines(&a))
	assert.Equal(t, []string{SparrowSound, SparrowFly}, lines(&b))
}

func TestSparrow_Idempotent(t *testing.T) {
	var buf bytes.Buffer
	s := NewSparrow(&buf)
	for i := 0; i < 3; i++ {
		s.MakeSound()
	}
	assert.Equal(t, []string{SparrowSound, SparrowSound, SparrowSound}, lines(&buf))
}

func TestPlayDuck_SqueakEmitsOneLine(t *testing.T) {
	var buf bytes.Buffer
	d := NewPlayDuck(&buf)

	d.Squeak()
	assert.Equal(t, []string{PlayDuckSqueak}, lines(&buf))

	d.Squeak()
	assert.Len(t, lines(&buf), 2)
}

func TestBirdAdapter_Transparency(t *testing.T) {
	tests := []struct {
		name string
		make func(w io.Writer) Bird
	}{
		{"sparrow", func(w io.Writer) Bird { return NewSparrow(w) }},
		{"songbird", func(w io.Writer) Bird { return NewSongbird(w) }},
		{"echo", func(w io.Writer) Bird { return &echoBird{out: w, sound: "honk"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var direct, adapted bytes.Buffer

			tt.make(&direct).MakeSound()

			var duck ToyDuck = NewBirdAdapter(tt.make(&adapted))
			duck.Squeak()

			require.Len(t, lines(&adapted), 1)
			assert.Equal(t, direct.String(), adapted.String())
		})
	}
}

func TestBirdAdapter_SharesWrappedBird(t *testing.T) {
	var buf bytes.Buffer
	s := NewSparrow(&buf)
	a := NewBirdAdapter(s)

	assert.Same(t, s, a.Adaptee())

	s.MakeSound()
	a.Squeak()
	assert.Equal(t, []string{SparrowSound, SparrowSound}, lines(&buf))
}

func TestBirdAdapter_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewBirdAdapter(nil) })
}

func TestEndToEnd_FourthSignalMatchesSecond(t *testing.T) {
	var buf bytes.Buffer
	sparrow := NewSparrow(&buf)
	duck := NewPlayDuck(&buf)
	adapter := NewBirdAdapter(sparrow)

	sparrow.Fly()
	sparrow.MakeSound()
	duck.Squeak()
	adapter.Squeak()

	got := lines(&buf)
	require.Len(t, got, 4)
	assert.Equal(t, []string{SparrowFly, SparrowSound, PlayDuckSqueak, SparrowSound}, got)
	assert.Equal(t, got[1], got[3])
}
