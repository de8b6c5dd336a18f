package gamedata

import (
	"github.com/wrenhollow/bluebot/api/schemas"
	"github.com/wrenhollow/bluebot/internal/typechart"
)

// MoveKind splits moves into direct-damage and status effects.
type MoveKind int

const (
	MoveDamaging MoveKind = iota
	MoveStatus
)

// Move is one entry of the static move table. Power 0 means the move does no
// direct damage (status, fixed damage, or OHKO — all scored as status here).
type Move struct {
	Name     string
	Category typechart.Category
	Power    int
	MaxPP    int
}

// Kind classifies the move by its power.
func (m Move) Kind() MoveKind {
	if m.Power > 0 {
		return MoveDamaging
	}
	return MoveStatus
}

// StruggleID is the forced move used when every slot is out of PP.
const StruggleID schemas.MoveID = 0x98

// moveTable maps internal move id to its static data (pret/pokered
// moves.asm). Gust and Bite are Normal in this generation.
var moveTable = map[schemas.MoveID]Move{
	0x01: {"Pound", typechart.Normal, 40, 35},
	0x02: {"Karate Chop", typechart.Fighting, 50, 25},
	0x03: {"DoubleSlap", typechart.Normal, 15, 10},
	0x04: {"Comet Punch", typechart.Normal, 18, 15},
	0x05: {"Mega Punch", typechart.Normal, 80, 20},
	0x06: {"Pay Day", typechart.Normal, 40, 20},
	0x07: {"Fire Punch", typechart.Fire, 75, 15},
	0x08: {"Ice Punch", typechart.Ice, 75, 15},
	0x09: {"ThunderPunch", typechart.Electric, 75, 15},
	0x0A: {"Scratch", typechart.Normal, 40, 35},
	0x0B: {"ViceGrip", typechart.Normal, 55, 30},
	0x0C: {"Guillotine", typechart.Normal, 0, 5},
	0x0D: {"Razor Wind", typechart.Normal, 80, 10},
	0x0E: {"Swords Dance", typechart.Normal, 0, 30},
	0x0F: {"Cut", typechart.Normal, 50, 30},
	0x10: {"Gust", typechart.Normal, 40, 35},
	0x11: {"Wing Attack", typechart.Flying, 35, 35},
	0x12: {"Whirlwind", typechart.Normal, 0, 20},
	0x13: {"Fly", typechart.Flying, 70, 15},
	0x14: {"Bind", typechart.Normal, 15, 20},
	0x15: {"Slam", typechart.Normal, 80, 20},
	0x16: {"Vine Whip", typechart.Grass, 35, 10},
	0x17: {"Stomp", typechart.Normal, 65, 20},
	0x18: {"Double Kick", typechart.Fighting, 30, 30},
	0x19: {"Mega Kick", typechart.Normal, 120, 5},
	0x1A: {"Jump Kick", typechart.Fighting, 70, 25},
	0x1B: {"Rolling Kick", typechart.Fighting, 60, 15},
	0x1C: {"Sand Attack", typechart.Normal, 0, 15},
	0x1D: {"Headbutt", typechart.Normal, 70, 15},
	0x1E: {"Horn Attack", typechart.Normal, 65, 25},
	0x1F: {"Fury Attack", typechart.Normal, 15, 20},
	0x20: {"Horn Drill", typechart.Normal, 0, 5},
	0x21: {"Tackle", typechart.Normal, 35, 35},
	0x22: {"Body Slam", typechart.Normal, 85, 15},
	0x23: {"Wrap", typechart.Normal, 15, 20},
	0x24: {"Take Down", typechart.Normal, 90, 20},
	0x25: {"Thrash", typechart.Normal, 90, 20},
	0x26: {"Double-Edge", typechart.Normal, 100, 15},
	0x27: {"Tail Whip", typechart.Normal, 0, 30},
	0x28: {"Poison Sting", typechart.Poison, 15, 35},
	0x29: {"Twineedle", typechart.Bug, 25, 20},
	0x2A: {"Pin Missile", typechart.Bug, 14, 20},
	0x2B: {"Leer", typechart.Normal, 0, 30},
	0x2C: {"Bite", typechart.Normal, 60, 25},
	0x2D: {"Growl", typechart.Normal, 0, 40},
	0x2E: {"Roar", typechart.Normal, 0, 20},
	0x2F: {"Sing", typechart.Normal, 0, 15},
	0x30: {"Supersonic", typechart.Normal, 0, 20},
	0x31: {"SonicBoom", typechart.Normal, 0, 20},
	0x32: {"Disable", typechart.Normal, 0, 20},
	0x33: {"Acid", typechart.Poison, 40, 30},
	0x34: {"Ember", typechart.Fire, 40, 25},
	0x35: {"Flamethrower", typechart.Fire, 95, 15},
	0x36: {"Mist", typechart.Ice, 0, 30},
	0x37: {"Water Gun", typechart.Water, 40, 25},
	0x38: {"Hydro Pump", typechart.Water, 120, 5},
	0x39: {"Surf", typechart.Water, 95, 15},
	0x3A: {"Ice Beam", typechart.Ice, 95, 10},
	0x3B: {"Blizzard", typechart.Ice, 120, 5},
	0x3C: {"Psybeam", typechart.Psychic, 65, 20},
	0x3D: {"BubbleBeam", typechart.Water, 65, 20},
	0x3E: {"Aurora Beam", typechart.Ice, 65, 20},
	0x3F: {"Hyper Beam", typechart.Normal, 150, 5},
	0x40: {"Peck", typechart.Flying, 35, 35},
	0x41: {"Drill Peck", typechart.Flying, 80, 20},
	0x42: {"Submission", typechart.Fighting, 80, 25},
	0x43: {"Low Kick", typechart.Fighting, 50, 20},
	0x44: {"Counter", typechart.Fighting, 0, 20},
	0x45: {"Seismic Toss", typechart.Fighting, 0, 20},
	0x46: {"Strength", typechart.Normal, 80, 15},
	0x47: {"Absorb", typechart.Grass, 20, 20},
	0x48: {"Mega Drain", typechart.Grass, 40, 10},
	0x49: {"Leech Seed", typechart.Grass, 0, 10},
	0x4A: {"Growth", typechart.Normal, 0, 40},
	0x4B: {"Razor Leaf", typechart.Grass, 55, 25},
	0x4C: {"SolarBeam", typechart.Grass, 120, 10},
	0x4D: {"PoisonPowder", typechart.Poison, 0, 35},
	0x4E: {"Stun Spore", typechart.Grass, 0, 30},
	0x4F: {"Sleep Powder", typechart.Grass, 0, 15},
	0x50: {"Petal Dance", typechart.Grass, 70, 20},
	0x51: {"String Shot", typechart.Bug, 0, 40},
	0x52: {"Dragon Rage", typechart.Dragon, 0, 10},
	0x53: {"Fire Spin", typechart.Fire, 15, 15},
	0x54: {"Thundershock", typechart.Electric, 40, 30},
	0x55: {"Thunderbolt", typechart.Electric, 95, 15},
	0x56: {"Thunder Wave", typechart.Electric, 0, 20},
	0x57: {"Thunder", typechart.Electric, 120, 10},
	0x58: {"Rock Throw", typechart.Rock, 50, 15},
	0x59: {"Earthquake", typechart.Ground, 100, 10},
	0x5A: {"Fissure", typechart.Ground, 0, 5},
	0x5B: {"Dig", typechart.Ground, 100, 10},
	0x5C: {"Toxic", typechart.Poison, 0, 10},
	0x5D: {"Confusion", typechart.Psychic, 50, 25},
	0x5E: {"Psychic", typechart.Psychic, 90, 10},
	0x5F: {"Hypnosis", typechart.Psychic, 0, 20},
	0x60: {"Meditate", typechart.Psychic, 0, 40},
	0x61: {"Agility", typechart.Psychic, 0, 30},
	0x62: {"Quick Attack", typechart.Normal, 40, 30},
	0x63: {"Rage", typechart.Normal, 20, 20},
	0x64: {"Teleport", typechart.Psychic, 0, 20},
	0x65: {"Night Shade", typechart.Ghost, 0, 15},
	0x66: {"Mimic", typechart.Normal, 0, 10},
	0x67: {"Screech", typechart.Normal, 0, 40},
	0x68: {"Double Team", typechart.Normal, 0, 15},
	0x69: {"Recover", typechart.Normal, 0, 20},
	0x6A: {"Harden", typechart.Normal, 0, 30},
	0x6B: {"Minimize", typechart.Normal, 0, 20},
	0x6C: {"Smokescreen", typechart.Normal, 0, 20},
	0x6D: {"Confuse Ray", typechart.Ghost, 0, 10},
	0x6E: {"Withdraw", typechart.Water, 0, 40},
	0x6F: {"Defense Curl", typechart.Normal, 0, 40},
	0x70: {"Barrier", typechart.Psychic, 0, 30},
	0x71: {"Light Screen", typechart.Psychic, 0, 30},
	0x72: {"Haze", typechart.Ice, 0, 30},
	0x73: {"Reflect", typechart.Psychic, 0, 20},
	0x74: {"Focus Energy", typechart.Normal, 0, 30},
	0x75: {"Bide", typechart.Normal, 0, 10},
	0x76: {"Metronome", typechart.Normal, 0, 10},
	0x77: {"Mirror Move", typechart.Flying, 0, 20},
	0x78: {"Self-Destruct", typechart.Normal, 200, 5},
	0x79: {"Egg Bomb", typechart.Normal, 100, 10},
	0x7A: {"Lick", typechart.Ghost, 20, 30},
	0x7B: {"Smog", typechart.Poison, 20, 20},
	0x7C: {"Sludge", typechart.Poison, 65, 20},
	0x7D: {"Bone Club", typechart.Ground, 65, 20},
	0x7E: {"Fire Blast", typechart.Fire, 120, 5},
	0x7F: {"Waterfall", typechart.Water, 80, 15},
	0x80: {"Clamp", typechart.Water, 35, 10},
	0x81: {"Swift", typechart.Normal, 60, 20},
	0x82: {"Skull Bash", typechart.Normal, 100, 15},
	0x83: {"Spike Cannon", typechart.Normal, 20, 15},
	0x84: {"Constrict", typechart.Normal, 10, 35},
	0x85: {"Amnesia", typechart.Psychic, 0, 20},
	0x86: {"Kinesis", typechart.Psychic, 0, 15},
	0x87: {"Soft-Boiled", typechart.Normal, 0, 10},
	0x88: {"Hi Jump Kick", typechart.Fighting, 85, 20},
	0x89: {"Glare", typechart.Normal, 0, 30},
	0x8A: {"Dream Eater", typechart.Psychic, 100, 15},
	0x8B: {"Poison Gas", typechart.Poison, 0, 40},
	0x8C: {"Explosion", typechart.Normal, 250, 5},
	0x8D: {"Fury Swipes", typechart.Normal, 18, 15},
	0x8E: {"Bonemerang", typechart.Ground, 50, 10},
	0x8F: {"Rest", typechart.Psychic, 0, 10},
	0x90: {"Rock Slide", typechart.Rock, 75, 10},
	0x91: {"Hyper Fang", typechart.Normal, 80, 15},
	0x92: {"Sharpen", typechart.Normal, 0, 30},
	0x93: {"Conversion", typechart.Normal, 0, 30},
	0x94: {"Tri Attack", typechart.Normal, 80, 10},
	0x95: {"Super Fang", typechart.Normal, 0, 10},
	0x96: {"Slash", typechart.Normal, 70, 20},
	0x97: {"Substitute", typechart.Normal, 0, 10},
	0x98: {"Struggle", typechart.Normal, 50, 1},
}

// MoveByID returns the move entry and whether the id is known.
func MoveByID(id schemas.MoveID) (Move, bool) {
	m, ok := moveTable[id]
	return m, ok
}
