package bird

// BirdAdapter makes a Bird usable as a ToyDuck: Squeak is answered by the
// wrapped bird's MakeSound. The adapter borrows the bird and never mutates it.
type BirdAdapter struct {
	bird Bird
}

// NewBirdAdapter wraps b. It panics if b is nil, since an adapter without a
// bird has nothing to delegate to.
func NewBirdAdapter(b Bird) *BirdAdapter {
	if b == nil {
		panic("bird: NewBirdAdapter called with nil Bird")
	}
	return &BirdAdapter{bird: b}
}

// Squeak emits exactly what the wrapped bird's MakeSound emits.
func (a *BirdAdapter) Squeak() { a.bird.MakeSound() }

// Adaptee returns the wrapped bird.
func (a *BirdAdapter) Adaptee() Bird { return a.bird }

var (
	_ Bird    = (*Sparrow)(nil)
	_ Bird    = (*Songbird)(nil)
	_ ToyDuck = (*PlayDuck)(nil)
	_ ToyDuck = (*BirdAdapter)(nil)
)
