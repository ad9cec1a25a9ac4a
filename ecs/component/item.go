package component

type Item struct {
	Radius float64
}

var ItemComponent = NewComponent[Item]()
