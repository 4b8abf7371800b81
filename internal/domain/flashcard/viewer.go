package flashcard

import "math"

// Viewer is the study-session state machine for one set: a bounded card
// index plus a flipped flag. Navigation at a bound is a no-op, and any
// index change lands on the term side (flipped reset).
type Viewer struct {
	set     *Set
	index   int
	flipped bool
}

func NewViewer(set *Set) *Viewer {
	return &Viewer{set: set}
}

// Card returns the card under the cursor.
func (v *Viewer) Card() Card {
	return v.set.Cards[v.index]
}

func (v *Viewer) Index() int {
	return v.index
}

func (v *Viewer) Count() int {
	return len(v.set.Cards)
}

func (v *Viewer) Flipped() bool {
	return v.flipped
}

// Flip toggles between term and definition, independent of navigation.
func (v *Viewer) Flip() {
	v.flipped = !v.flipped
}

// Next advances to the following card. Returns false (and changes nothing)
// at the last card.
func (v *Viewer) Next() bool {
	if v.index >= len(v.set.Cards)-1 {
		return false
	}
	v.flipped = false
	v.index++
	return true
}

// Prev steps back to the previous card. Returns false (and changes nothing)
// at the first card.
func (v *Viewer) Prev() bool {
	if v.index <= 0 {
		return false
	}
	v.flipped = false
	v.index--
	return true
}

// Progress is the percentage of the set covered so far, rounded.
func (v *Viewer) Progress() int {
	if len(v.set.Cards) == 0 {
		return 0
	}
	return int(math.Round(float64(v.index+1) / float64(len(v.set.Cards)) * 100))
}
