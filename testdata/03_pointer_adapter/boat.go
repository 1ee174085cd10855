package boat

type RowingBoat interface {
	Row()
}

type Sailer interface {
	Sail()
}

type FishingBoat struct{}

func (*FishingBoat) Sail() {}

type FishingBoatAdapter struct {
	Boat Sailer
}

func (a *FishingBoatAdapter) Row() { a.Boat.Sail() }

type quietAdapter struct {
	boat Sailer
}

func (q *quietAdapter) Row() { q.boat.Sail() }
