package card

import "strconv"

// Rank 点数, 2..10 then J Q K A. The numeric value orders ranks.
type Rank byte

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in declared order.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return strconv.Itoa(int(r))
	}
	return "?"
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}
