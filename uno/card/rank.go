package card

import "fmt"

type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var rankNames = map[Rank]string{
	Zero:         "0",
	One:          "1",
	Two:          "2",
	Three:        "3",
	Four:         "4",
	Five:         "5",
	Six:          "6",
	Seven:        "7",
	Eight:        "8",
	Nine:         "9",
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "drawTwo",
	Wild:         "wild",
	WildDrawFour: "wildDrawFour",
}

var ranks = func() map[string]Rank {
	m := make(map[string]Rank, len(rankNames))
	for rank, name := range rankNames {
		m[name] = rank
	}
	return m
}()

func ParseRank(name string) (Rank, error) {
	rank, ok := ranks[name]
	if !ok {
		return 0, fmt.Errorf("invalid rank '%s'", name)
	}
	return rank, nil
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

func (r Rank) Valid() bool {
	_, ok := rankNames[r]
	return ok
}

func (r Rank) IsNumber() bool {
	return r >= Zero && r <= Nine
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawFour
}

// symbol is the short label used when painting a card.
func (r Rank) symbol() string {
	switch r {
	case Skip:
		return "(/)"
	case Reverse:
		return "<=>"
	case DrawTwo:
		return "+2!"
	case Wild:
		return "(*)"
	case WildDrawFour:
		return "+4!"
	default:
		return "[" + r.String() + "]"
	}
}
