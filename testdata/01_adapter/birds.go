package birds

type Bird interface {
	Fly()
	MakeSound()
}

type ToyDuck interface {
	Squeak()
}

type Sparrow struct{}

func (Sparrow) Fly()       {}
func (Sparrow) MakeSound() {}

type PlayDuck struct{}

func (PlayDuck) Squeak() {}

type BirdAdapter struct {
	bird Bird
}

func (a BirdAdapter) Squeak() { a.bird.MakeSound() }
