package entities

// Insult categories, named by how badly the combination stings.
const (
	CategorySolid       = "Solid"
	CategorySurprising  = "Surprising"
	CategoryShocking    = "Shocking"
	CategoryDistressing = "Distressing"
	CategoryAstonishing = "Astonishing"
)

// Insult is a scored grouping of dice values banked together. EchoDice
// counts bonus dice the combination grants; they contribute to the
// combination's size for scoring but not to Damage unless a modifier
// materializes them as real values.
type Insult struct {
	Category string `json:"category"`
	Dice     []int  `json:"dice"`
	EchoDice int    `json:"echo_dice"`
	Damage   int    `json:"damage"`
}

// NewInsult builds an insult and derives its damage from the dice sum.
func NewInsult(category string, dice []int, echoDice int) *Insult {
	in := &Insult{
		Category: category,
		Dice:     dice,
		EchoDice: echoDice,
	}
	in.recalc()
	return in
}

// AddDie appends a materialized value and re-derives damage. Bank-time
// modifiers call this; damage is recomputed after every mutation.
func (in *Insult) AddDie(value int) {
	in.Dice = append(in.Dice, value)
	in.recalc()
}

// SetDie replaces the value at index i and re-derives damage.
func (in *Insult) SetDie(i, value int) {
	in.Dice[i] = value
	in.recalc()
}

// Size returns the number of real dice in the insult.
func (in *Insult) Size() int {
	return len(in.Dice)
}

// Lowest returns the smallest die value in the insult.
func (in *Insult) Lowest() int {
	low := in.Dice[0]
	for _, v := range in.Dice[1:] {
		if v < low {
			low = v
		}
	}
	return low
}

// IsPair reports whether the insult is exactly a matched pair.
func (in *Insult) IsPair() bool {
	return len(in.Dice) == 2 && in.Dice[0] == in.Dice[1]
}

func (in *Insult) recalc() {
	sum := 0
	for _, v := range in.Dice {
		sum += v
	}
	in.Damage = sum
}
