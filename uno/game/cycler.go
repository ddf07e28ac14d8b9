package game

type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// Cycler walks a fixed seat order in the current direction.
type Cycler struct {
	elements  []Seat
	current   int
	direction Direction
}

func NewCycler(elements []Seat) *Cycler {
	return &Cycler{
		elements:  append([]Seat(nil), elements...),
		current:   0,
		direction: Clockwise,
	}
}

func (c *Cycler) Current() Seat {
	return c.elements[c.current]
}

func (c *Cycler) Index() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

func (c *Cycler) Elements() []Seat {
	return append([]Seat(nil), c.elements...)
}

func (c *Cycler) ForEach(function func(Seat)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Next() Seat {
	elementCount := len(c.elements)
	c.current = (c.current + int(c.direction) + elementCount) % elementCount
	return c.elements[c.current]
}

func (c *Cycler) Reverse() {
	c.direction = -c.direction
}
