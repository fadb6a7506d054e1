package config

// SampleDeck returns a small deck written by `flashcards init` as a starting
// point.
func SampleDeck() *Deck {
	d := DefaultDeck()
	d.Cards = []Card{
		{UID: 1, Pos: 1, English: "water", LWC: "agua", IPA: "ˈa.ɣwa", Notes: "*noun*, feminine"},
		{UID: 2, Pos: 2, English: "house", LWC: "casa", IPA: "ˈka.sa"},
		{
			UID: 3, Pos: 3, English: "tree", LWC: "árbol", IPA: "ˈaɾ.βol",
			Img: &Image{Path: "img/tree.png", X: 120, Y: 120},
		},
	}
	return d
}
