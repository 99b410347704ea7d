package deck

import (
	"math/rand"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))

	if d.CardsRemaining() != Size {
		t.Fatalf("CardsRemaining() = %d, want %d", d.CardsRemaining(), Size)
	}

	seen := make(map[Card]bool)
	for !d.IsEmpty() {
		card, ok := d.Deal()
		if !ok {
			t.Fatal("Deal() failed on non-empty deck")
		}
		if seen[card] {
			t.Errorf("duplicate card dealt: %v", card)
		}
		seen[card] = true
	}

	if len(seen) != Size {
		t.Errorf("dealt %d unique cards, want %d", len(seen), Size)
	}
}

func TestDealExhaustion(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	d.Shuffle()

	for i := 0; i < Size; i++ {
		if _, ok := d.Deal(); !ok {
			t.Fatalf("Deal() failed at card %d", i)
		}
	}

	if !d.IsEmpty() {
		t.Error("deck should be empty after 52 deals")
	}
	if _, ok := d.Deal(); ok {
		t.Error("Deal() on empty deck should return false")
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	deal := func(seed int64) []Card {
		d := NewDeck(rand.New(rand.NewSource(seed)))
		d.Shuffle()
		cards := make([]Card, 0, Size)
		for !d.IsEmpty() {
			card, _ := d.Deal()
			cards = append(cards, card)
		}
		return cards
	}

	a := deal(42)
	b := deal(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at index %d: %v vs %v", i, a[i], b[i])
		}
	}

	c := deal(43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical orders")
	}
}
