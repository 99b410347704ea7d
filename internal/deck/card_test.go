package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "run of spades",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "low cards",
			input: "5h4d3c2s",
			expected: []Card{
				{Suit: Hearts, Rank: Five},
				{Suit: Diamonds, Rank: Four},
				{Suit: Clubs, Rank: Three},
				{Suit: Spades, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseCards() returned %d cards, want %d", len(got), len(tt.expected))
			}
			for i, card := range got {
				if card != tt.expected[i] {
					t.Errorf("ParseCards()[%d] = %v, want %v", i, card, tt.expected[i])
				}
			}
		})
	}
}

func TestRankValues(t *testing.T) {
	// Adjacency arithmetic depends on Ace=1 through King=13.
	if Ace != 1 {
		t.Errorf("Ace = %d, want 1", Ace)
	}
	if King != 13 {
		t.Errorf("King = %d, want 13", King)
	}
	if NoRank != 0 {
		t.Errorf("NoRank = %d, want 0", NoRank)
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, King), "K♦"},
		{NewCard(Clubs, Two), "2♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("Card.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestCardEquality(t *testing.T) {
	a := NewCard(Hearts, Seven)
	b := NewCard(Hearts, Seven)
	c := NewCard(Spades, Seven)

	if a != b {
		t.Error("cards with same suit and rank should be equal")
	}
	if a == c {
		t.Error("cards with different suits should not be equal")
	}
}

func TestIsRed(t *testing.T) {
	if !NewCard(Hearts, Ace).IsRed() {
		t.Error("hearts should be red")
	}
	if !NewCard(Diamonds, Ace).IsRed() {
		t.Error("diamonds should be red")
	}
	if NewCard(Spades, Ace).IsRed() {
		t.Error("spades should not be red")
	}
	if NewCard(Clubs, Ace).IsRed() {
		t.Error("clubs should not be red")
	}
}
