package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// StandardDeckSize is the number of cards in a full deck.
const StandardDeckSize = 108

// Deck is the draw pile. Cards are drawn from the front.
type Deck struct {
	cards []card.Card
}

// NewDeck wraps cards in their given order.
func NewDeck(cards []card.Card) *Deck {
	return &Deck{cards: append(make([]card.Card, 0, len(cards)), cards...)}
}

// NewStandardDeck builds and shuffles the 108 standard cards.
func NewStandardDeck(rng *rand.Rand) *Deck {
	deck := NewDeck(BuildCards())
	deck.Shuffle(rng)
	return deck
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// DrawOne returns false when the deck is empty.
func (d *Deck) DrawOne() (card.Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[0], true
}

// Draw removes up to amount cards from the front of the deck.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount <= 0 {
		return []card.Card{}
	}
	cards := append([]card.Card(nil), d.cards[:amount]...)
	d.cards = d.cards[amount:]
	return cards
}

// Refill puts cards back into the deck and shuffles the whole deck.
func (d *Deck) Refill(cards []card.Card, rng *rand.Rand) {
	d.cards = append(d.cards, cards...)
	d.Shuffle(rng)
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	Shuffle(d.cards, rng)
}

// BuildCards returns the standard composition in a fixed order: per
// playable color one 0, two of each 1-9, two skips, two reverses and two
// draw-twos, followed by four wilds and four wild-draw-fours.
func BuildCards() []card.Card {
	cards := make([]card.Card, 0, StandardDeckSize)
	for _, cardColor := range color.Playables {
		cards = append(cards, createColorCards(cardColor)...)
	}
	return append(cards, createBlackCards()...)
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}
	for number := 1; number <= 9; number++ {
		cards = append(cards, card.NewNumberCard(cardColor, number), card.NewNumberCard(cardColor, number))
	}
	for i := 0; i < 2; i++ {
		cards = append(cards,
			card.NewSkipCard(cardColor),
			card.NewReverseCard(cardColor),
			card.NewDrawTwoCard(cardColor),
		)
	}
	return cards
}

func createBlackCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard())
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildDrawFourCard())
	}
	return cards
}

// Shuffle permutes cards in place.
func Shuffle(cards []card.Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
