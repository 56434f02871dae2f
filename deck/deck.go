// Package deck provides FrenchDeck, a read-only 52-card sequence.
package deck

import (
	"iter"

	"frenchdeck/card"
	"frenchdeck/seq"
)

// Size is the number of cards in a full deck.
const Size = len(card.Suits) * len(card.Ranks)

var _ seq.Sequence[card.Card] = (*Deck)(nil)

// Deck holds every suit × rank combination in construction order. It is never
// modified after New, so one Deck can be read from many goroutines.
type Deck struct {
	cards []card.Card
}

// New builds the deck suit by suit (spades, diamonds, clubs, hearts), each suit
// running 2 through A.
func New() *Deck {
	cards := make([]card.Card, 0, Size)
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			cards = append(cards, card.New(r, s))
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Len() int { return len(d.cards) }

// At is the unchecked read used by the seq helpers. Callers outside seq should use Get.
func (d *Deck) At(i int) card.Card { return d.cards[i] }

func (d *Deck) Get(position int) (card.Card, error) {
	return seq.Get[card.Card](d, position)
}

func (d *Deck) Slice(start, stop, step int) card.List {
	return seq.Slice[card.Card](d, start, stop, step)
}

func (d *Deck) All() iter.Seq[card.Card] {
	return seq.All[card.Card](d)
}

func (d *Deck) Backward() iter.Seq2[int, card.Card] {
	return seq.Backward[card.Card](d)
}

func (d *Deck) Index(c card.Card) int {
	return seq.Index[card.Card](d, c)
}

func (d *Deck) Contains(c card.Card) bool {
	return seq.Contains[card.Card](d, c)
}

func (d *Deck) Choice(rng seq.Rand) (card.Card, error) {
	return seq.Choice[card.Card](d, rng)
}

// Cards returns a copy of the cards in construction order.
func (d *Deck) Cards() card.List {
	return seq.Collect[card.Card](d)
}

// Shuffler is satisfied by *math/rand.Rand.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffled returns the cards in a new random order. The deck keeps its own order.
func (d *Deck) Shuffled(rng Shuffler) card.List {
	cl := d.Cards()
	rng.Shuffle(len(cl), func(i, j int) {
		cl[i], cl[j] = cl[j], cl[i]
	})
	return cl
}
