package card

import (
	"fmt"
	"strings"
)

// Card is an immutable rank/suit pair. Two cards are equal iff both fields match,
// so Card can be compared with == and used as a map key.
type Card struct {
	Rank Rank
	Suit Suit
}

func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("Card(rank='%s', suit='%s')", c.Rank, c.Suit)
}

// Short renders the compact form, e.g. "A♠️" or "10♥️".
func (c Card) Short() string {
	return c.Rank.String() + c.Suit.Symbol()
}

func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Parse 将字符串 (如 "As", "Td", "10h") 转换为 Card
func Parse(cardStr string) (Card, error) {
	if len(cardStr) < 2 {
		return Card{}, fmt.Errorf("invalid card string: %s", cardStr)
	}

	// 1. suit is the last character
	suitChar := cardStr[len(cardStr)-1]
	var suit Suit

	switch suitChar {
	case 's', 'S':
		suit = Spade
	case 'd', 'D':
		suit = Diamond
	case 'c', 'C':
		suit = Club
	case 'h', 'H':
		suit = Heart
	default:
		return Card{}, fmt.Errorf("invalid suit: %c", suitChar)
	}

	// 2. rank is everything before it
	rankStr := cardStr[:len(cardStr)-1]
	var rank Rank

	switch strings.ToUpper(rankStr) {
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank: %s", rankStr)
	}

	return New(rank, suit), nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(cardStr string) Card {
	c, err := Parse(cardStr)
	if err != nil {
		panic(err)
	}
	return c
}
