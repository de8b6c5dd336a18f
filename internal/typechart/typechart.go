// Package typechart implements the Gen-1 type effectiveness lookup, including
// the generation's documented oddities. The chart stores only non-neutral
// entries; everything else is 1x.
package typechart

import "fmt"

// Category is one of the fifteen Gen-1 elemental types. Dark, Steel and
// Fairy do not exist in this generation.
type Category int

const (
	// None marks an absent secondary type.
	None Category = iota
	Normal
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
)

var categoryNames = map[Category]string{
	None:     "None",
	Normal:   "Normal",
	Fighting: "Fighting",
	Flying:   "Flying",
	Poison:   "Poison",
	Ground:   "Ground",
	Rock:     "Rock",
	Bug:      "Bug",
	Ghost:    "Ghost",
	Fire:     "Fire",
	Water:    "Water",
	Grass:    "Grass",
	Electric: "Electric",
	Psychic:  "Psychic",
	Ice:      "Ice",
	Dragon:   "Dragon",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// All lists every attackable category, in internal order.
var All = []Category{
	Normal, Fighting, Flying, Poison, Ground, Rock, Bug, Ghost,
	Fire, Water, Grass, Electric, Psychic, Ice, Dragon,
}

type matchup struct {
	attack, defend Category
}

// chart holds every non-neutral Gen-1 matchup as explicit data, so the
// generation's historical exceptions are individually testable entries rather
// than derived by rule:
//
//   - Ghost vs Psychic is 0x (the infamous Gen-1 coding bug; 2x from Gen 2 on)
//   - Bug vs Poison is 0.5x (became 2x in Gen 2)
//   - Poison vs Bug is absent, i.e. neutral
//   - Ice vs Fire is absent: Fire does not resist Ice in Gen 1
var chart = map[matchup]float64{
	{Normal, Rock}:  0.5,
	{Normal, Ghost}: 0,

	{Fighting, Normal}:  2,
	{Fighting, Ice}:     2,
	{Fighting, Rock}:    2,
	{Fighting, Poison}:  0.5,
	{Fighting, Flying}:  0.5,
	{Fighting, Psychic}: 0.5,
	{Fighting, Bug}:     0.5,
	{Fighting, Ghost}:   0,

	{Flying, Fighting}: 2,
	{Flying, Bug}:      2,
	{Flying, Grass}:    2,
	{Flying, Electric}: 0.5,
	{Flying, Rock}:     0.5,

	{Poison, Grass}:  2,
	{Poison, Poison}: 0.5,
	{Poison, Ground}: 0.5,
	{Poison, Rock}:   0.5,
	{Poison, Ghost}:  0.5,

	{Ground, Fire}:     2,
	{Ground, Electric}: 2,
	{Ground, Poison}:   2,
	{Ground, Rock}:     2,
	{Ground, Grass}:    0.5,
	{Ground, Bug}:      0.5,
	{Ground, Flying}:   0,

	{Rock, Fire}:     2,
	{Rock, Ice}:      2,
	{Rock, Flying}:   2,
	{Rock, Bug}:      2,
	{Rock, Fighting}: 0.5,
	{Rock, Ground}:   0.5,

	{Bug, Psychic}:  2,
	{Bug, Grass}:    2,
	{Bug, Fire}:     0.5,
	{Bug, Fighting}: 0.5,
	{Bug, Flying}:   0.5,
	{Bug, Ghost}:    0.5,
	{Bug, Poison}:   0.5,

	{Ghost, Ghost}:   2,
	{Ghost, Normal}:  0,
	{Ghost, Psychic}: 0,

	{Fire, Grass}:  2,
	{Fire, Ice}:    2,
	{Fire, Bug}:    2,
	{Fire, Fire}:   0.5,
	{Fire, Water}:  0.5,
	{Fire, Rock}:   0.5,
	{Fire, Dragon}: 0.5,

	{Water, Fire}:   2,
	{Water, Ground}: 2,
	{Water, Rock}:   2,
	{Water, Water}:  0.5,
	{Water, Grass}:  0.5,
	{Water, Dragon}: 0.5,

	{Grass, Water}:  2,
	{Grass, Ground}: 2,
	{Grass, Rock}:   2,
	{Grass, Fire}:   0.5,
	{Grass, Grass}:  0.5,
	{Grass, Poison}: 0.5,
	{Grass, Flying}: 0.5,
	{Grass, Bug}:    0.5,
	{Grass, Dragon}: 0.5,

	{Electric, Water}:    2,
	{Electric, Flying}:   2,
	{Electric, Electric}: 0.5,
	{Electric, Grass}:    0.5,
	{Electric, Dragon}:   0.5,
	{Electric, Ground}:   0,

	{Psychic, Fighting}: 2,
	{Psychic, Poison}:   2,
	{Psychic, Psychic}:  0.5,
	{Psychic, Ghost}:    0,

	{Ice, Grass}:  2,
	{Ice, Ground}: 2,
	{Ice, Flying}: 2,
	{Ice, Dragon}: 2,
	{Ice, Water}:  0.5,
	{Ice, Ice}:    0.5,

	{Dragon, Dragon}: 2,
}

// Against returns the single-type multiplier for attack hitting defend.
// Unlisted pairs are neutral.
func Against(attack, defend Category) float64 {
	if defend == None {
		return 1
	}
	if m, ok := chart[matchup{attack, defend}]; ok {
		return m
	}
	return 1
}

// Multiplier returns the combined multiplier for an attack against a defender
// with one or two types. Dual-type defenders combine multiplicatively, so a
// 2x/2x pair yields 4x and any 0x component forces 0x overall. The result is
// always one of 0, 0.25, 0.5, 1, 2, 4.
func Multiplier(attack, primary, secondary Category) float64 {
	return Against(attack, primary) * Against(attack, secondary)
}
