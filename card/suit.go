package card

type Suit byte

// Declared order: spades, diamonds, clubs, hearts.
const (
	Spade   Suit = iota // ♠️
	Diamond             // ♦️
	Club                // ♣️
	Heart               // ♥️
)

// Suits lists every suit in declared order.
var Suits = [...]Suit{Spade, Diamond, Club, Heart}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "spades"
	case Diamond:
		return "diamonds"
	case Club:
		return "clubs"
	case Heart:
		return "hearts"
	}
	return "?"
}

func (s Suit) Symbol() string {
	switch s {
	case Diamond:
		return "♦️"
	case Club:
		return "♣️"
	case Heart:
		return "♥️"
	case Spade:
		return "♠️"
	}
	return "?"
}

func (s Suit) Valid() bool {
	return s <= Heart
}
