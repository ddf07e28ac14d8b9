package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	blueFive := card.NewNumberCard(color.Blue, 5)
	greenFive := card.NewNumberCard(color.Green, 5)
	greenSeven := card.NewNumberCard(color.Green, 7)

	pile := game.NewPile()
	pile.Add(blueFive)
	pile.Add(greenFive)
	pile.Add(greenSeven)
	require.Equal(t, []card.Card{blueFive, greenFive, greenSeven}, pile.Cards())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	require.True(t, pile.Top().IsZero())
	greenSeven := card.NewNumberCard(color.Green, 7)
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(greenSeven)
	require.Equal(t, greenSeven, pile.Top())
}

func TestTakeUnderTop(t *testing.T) {
	t.Run("keeps_only_the_top_card", func(t *testing.T) {
		blueFive := card.NewNumberCard(color.Blue, 5)
		wild := card.NewWildCard()
		greenSeven := card.NewNumberCard(color.Green, 7)

		pile := game.NewPile()
		pile.Add(blueFive)
		pile.Add(wild)
		pile.Add(greenSeven)

		require.Equal(t, []card.Card{blueFive, wild}, pile.TakeUnderTop())
		require.Equal(t, []card.Card{greenSeven}, pile.Cards())
	})

	t.Run("returns_nothing_with_a_single_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewWildCard())
		require.Empty(t, pile.TakeUnderTop())
		require.Equal(t, 1, pile.Len())
	})
}
