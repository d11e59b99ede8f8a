package basics

// Item 46: prefer for-range.
//
// The classic nested-iterator bug: advancing the outer iterator inside the
// inner loop. With explicit indexes the mistake reads plausibly; with range
// the iteration state is not available to misuse.

// Suit and Rank enumerate a deck's dimensions.
type Suit string

type Rank string

// Suits and Ranks are the deck dimensions in display order.
var (
	Suits = []Suit{"clubs", "diamonds", "hearts", "spades"}
	Ranks = []Rank{"ace", "king", "queen", "jack", "ten"}
)

// Card pairs a suit with a rank.
type Card struct {
	Suit Suit
	Rank Rank
}

// deckBuggy advances the suit index in the inner loop - the classic bug.
// It produces pairs like (clubs,ace) (diamonds,king)... then runs out of
// suits and stops early.
func deckBuggy() []Card {
	var cards []Card
	i, j := 0, 0
	for i < len(Suits) {
		for j = 0; j < len(Ranks) && i < len(Suits); j++ {
			cards = append(cards, Card{Suit: Suits[i], Rank: Ranks[j]})
			i++ // belongs to the outer loop; compiles fine here
		}
	}
	return cards
}

// Deck uses range; the iteration variables cannot be advanced by hand.
func Deck() []Card {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}
