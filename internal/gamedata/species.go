// Package gamedata holds the static Gen-1 species and move tables. Loaded
// once at process start, read-only at runtime. Indexes and values follow the
// game's internal data (pret/pokered disassembly), not dex numbering.
package gamedata

import (
	"github.com/wrenhollow/bluebot/api/schemas"
	"github.com/wrenhollow/bluebot/internal/typechart"
)

// Species describes one creature's static typing.
type Species struct {
	Name      string
	Primary   typechart.Category
	Secondary typechart.Category // typechart.None when single-typed
}

// speciesTable maps internal species index to typing. Gaps in the index space
// are unused slots in the original ROM.
var speciesTable = map[schemas.SpeciesID]Species{
	0x01: {"Rhydon", typechart.Ground, typechart.Rock},
	0x02: {"Kangaskhan", typechart.Normal, typechart.None},
	0x03: {"NidoranM", typechart.Poison, typechart.None},
	0x04: {"Clefairy", typechart.Normal, typechart.None},
	0x05: {"Spearow", typechart.Normal, typechart.Flying},
	0x06: {"Voltorb", typechart.Electric, typechart.None},
	0x07: {"Nidoking", typechart.Poison, typechart.Ground},
	0x08: {"Slowbro", typechart.Water, typechart.Psychic},
	0x09: {"Ivysaur", typechart.Grass, typechart.Poison},
	0x0A: {"Exeggutor", typechart.Grass, typechart.Psychic},
	0x0B: {"Lickitung", typechart.Normal, typechart.None},
	0x0C: {"Exeggcute", typechart.Grass, typechart.Psychic},
	0x0D: {"Grimer", typechart.Poison, typechart.None},
	0x0E: {"Gengar", typechart.Ghost, typechart.Poison},
	0x0F: {"NidoranF", typechart.Poison, typechart.None},
	0x10: {"Nidoqueen", typechart.Poison, typechart.Ground},
	0x11: {"Cubone", typechart.Ground, typechart.None},
	0x12: {"Rhyhorn", typechart.Ground, typechart.Rock},
	0x13: {"Lapras", typechart.Water, typechart.Ice},
	0x14: {"Arcanine", typechart.Fire, typechart.None},
	0x15: {"Mew", typechart.Psychic, typechart.None},
	0x16: {"Gyarados", typechart.Water, typechart.Flying},
	0x17: {"Shellder", typechart.Water, typechart.None},
	0x18: {"Tentacool", typechart.Water, typechart.Poison},
	0x19: {"Gastly", typechart.Ghost, typechart.Poison},
	0x1A: {"Scyther", typechart.Bug, typechart.Flying},
	0x1B: {"Staryu", typechart.Water, typechart.None},
	0x1C: {"Blastoise", typechart.Water, typechart.None},
	0x1D: {"Pinsir", typechart.Bug, typechart.None},
	0x1E: {"Tangela", typechart.Grass, typechart.None},
	0x20: {"Growlithe", typechart.Fire, typechart.None},
	0x21: {"Onix", typechart.Rock, typechart.Ground},
	0x22: {"Fearow", typechart.Normal, typechart.Flying},
	0x23: {"Pidgey", typechart.Normal, typechart.Flying},
	0x24: {"Slowpoke", typechart.Water, typechart.Psychic},
	0x25: {"Kadabra", typechart.Psychic, typechart.None},
	0x26: {"Graveler", typechart.Rock, typechart.Ground},
	0x27: {"Chansey", typechart.Normal, typechart.None},
	0x28: {"Machoke", typechart.Fighting, typechart.None},
	0x29: {"MrMime", typechart.Psychic, typechart.None},
	0x2A: {"Hitmonlee", typechart.Fighting, typechart.None},
	0x2B: {"Hitmonchan", typechart.Fighting, typechart.None},
	0x2C: {"Arbok", typechart.Poison, typechart.None},
	0x2D: {"Parasect", typechart.Bug, typechart.Grass},
	0x2E: {"Psyduck", typechart.Water, typechart.None},
	0x2F: {"Drowzee", typechart.Psychic, typechart.None},
	0x30: {"Golem", typechart.Rock, typechart.Ground},
	0x32: {"Magmar", typechart.Fire, typechart.None},
	0x34: {"Electabuzz", typechart.Electric, typechart.None},
	0x35: {"Magneton", typechart.Electric, typechart.None},
	0x36: {"Koffing", typechart.Poison, typechart.None},
	0x38: {"Mankey", typechart.Fighting, typechart.None},
	0x39: {"Seel", typechart.Water, typechart.None},
	0x3A: {"Diglett", typechart.Ground, typechart.None},
	0x3B: {"Tauros", typechart.Normal, typechart.None},
	0x3F: {"Farfetchd", typechart.Normal, typechart.Flying},
	0x40: {"Venonat", typechart.Bug, typechart.Poison},
	0x41: {"Dragonite", typechart.Dragon, typechart.Flying},
	0x45: {"Doduo", typechart.Normal, typechart.Flying},
	0x46: {"Poliwag", typechart.Water, typechart.None},
	0x47: {"Jynx", typechart.Ice, typechart.Psychic},
	0x48: {"Moltres", typechart.Fire, typechart.Flying},
	0x49: {"Articuno", typechart.Ice, typechart.Flying},
	0x4A: {"Zapdos", typechart.Electric, typechart.Flying},
	0x4B: {"Ditto", typechart.Normal, typechart.None},
	0x4C: {"Meowth", typechart.Normal, typechart.None},
	0x4D: {"Krabby", typechart.Water, typechart.None},
	0x51: {"Vulpix", typechart.Fire, typechart.None},
	0x52: {"Ninetales", typechart.Fire, typechart.None},
	0x53: {"Pikachu", typechart.Electric, typechart.None},
	0x54: {"Raichu", typechart.Electric, typechart.None},
	0x57: {"Dratini", typechart.Dragon, typechart.None},
	0x58: {"Dragonair", typechart.Dragon, typechart.None},
	0x59: {"Kabuto", typechart.Rock, typechart.Water},
	0x5A: {"Kabutops", typechart.Rock, typechart.Water},
	0x5B: {"Horsea", typechart.Water, typechart.None},
	0x5C: {"Seadra", typechart.Water, typechart.None},
	0x5F: {"Sandshrew", typechart.Ground, typechart.None},
	0x60: {"Sandslash", typechart.Ground, typechart.None},
	0x61: {"Omanyte", typechart.Rock, typechart.Water},
	0x62: {"Omastar", typechart.Rock, typechart.Water},
	0x63: {"Jigglypuff", typechart.Normal, typechart.None},
	0x64: {"Wigglytuff", typechart.Normal, typechart.None},
	0x65: {"Eevee", typechart.Normal, typechart.None},
	0x66: {"Flareon", typechart.Fire, typechart.None},
	0x67: {"Jolteon", typechart.Electric, typechart.None},
	0x68: {"Vaporeon", typechart.Water, typechart.None},
	0x69: {"Machop", typechart.Fighting, typechart.None},
	0x6A: {"Zubat", typechart.Poison, typechart.Flying},
	0x6B: {"Ekans", typechart.Poison, typechart.None},
	0x6C: {"Paras", typechart.Bug, typechart.Grass},
	0x6D: {"Poliwhirl", typechart.Water, typechart.None},
	0x6E: {"Poliwrath", typechart.Water, typechart.Fighting},
	0x6F: {"Weedle", typechart.Bug, typechart.Poison},
	0x70: {"Kakuna", typechart.Bug, typechart.Poison},
	0x71: {"Beedrill", typechart.Bug, typechart.Poison},
	0x73: {"Dodrio", typechart.Normal, typechart.Flying},
	0x74: {"Primeape", typechart.Fighting, typechart.None},
	0x75: {"Dugtrio", typechart.Ground, typechart.None},
	0x76: {"Venomoth", typechart.Bug, typechart.Poison},
	0x77: {"Dewgong", typechart.Water, typechart.Ice},
	0x7A: {"Caterpie", typechart.Bug, typechart.None},
	0x7B: {"Metapod", typechart.Bug, typechart.None},
	0x7C: {"Butterfree", typechart.Bug, typechart.Flying},
	0x7D: {"Machamp", typechart.Fighting, typechart.None},
	0x7F: {"Golduck", typechart.Water, typechart.None},
	0x80: {"Hypno", typechart.Psychic, typechart.None},
	0x81: {"Golbat", typechart.Poison, typechart.Flying},
	0x82: {"Mewtwo", typechart.Psychic, typechart.None},
	0x83: {"Snorlax", typechart.Normal, typechart.None},
	0x84: {"Magikarp", typechart.Water, typechart.None},
	0x87: {"Muk", typechart.Poison, typechart.None},
	0x89: {"Kingler", typechart.Water, typechart.None},
	0x8A: {"Cloyster", typechart.Water, typechart.Ice},
	0x8C: {"Electrode", typechart.Electric, typechart.None},
	0x8D: {"Clefable", typechart.Normal, typechart.None},
	0x8E: {"Weezing", typechart.Poison, typechart.None},
	0x8F: {"Persian", typechart.Normal, typechart.None},
	0x90: {"Marowak", typechart.Ground, typechart.None},
	0x92: {"Haunter", typechart.Ghost, typechart.Poison},
	0x93: {"Abra", typechart.Psychic, typechart.None},
	0x94: {"Alakazam", typechart.Psychic, typechart.None},
	0x95: {"Pidgeotto", typechart.Normal, typechart.Flying},
	0x96: {"Pidgeot", typechart.Normal, typechart.Flying},
	0x97: {"Starmie", typechart.Water, typechart.Psychic},
	0x98: {"Bulbasaur", typechart.Grass, typechart.Poison},
	0x99: {"Venusaur", typechart.Grass, typechart.Poison},
	0x9A: {"Tentacruel", typechart.Water, typechart.Poison},
	0x9C: {"Goldeen", typechart.Water, typechart.None},
	0x9D: {"Seaking", typechart.Water, typechart.None},
	0xA2: {"Ponyta", typechart.Fire, typechart.None},
	0xA3: {"Rapidash", typechart.Fire, typechart.None},
	0xA4: {"Rattata", typechart.Normal, typechart.None},
	0xA5: {"Raticate", typechart.Normal, typechart.None},
	0xA6: {"Nidorino", typechart.Poison, typechart.None},
	0xA7: {"Nidorina", typechart.Poison, typechart.None},
	0xA8: {"Geodude", typechart.Rock, typechart.Ground},
	0xA9: {"Porygon", typechart.Normal, typechart.None},
	0xAA: {"Aerodactyl", typechart.Rock, typechart.Flying},
	0xAC: {"Magnemite", typechart.Electric, typechart.None},
	0xAF: {"Charmander", typechart.Fire, typechart.None},
	0xB0: {"Squirtle", typechart.Water, typechart.None},
	0xB1: {"Charmeleon", typechart.Fire, typechart.None},
	0xB2: {"Wartortle", typechart.Water, typechart.None},
	0xB3: {"Charizard", typechart.Fire, typechart.Flying},
	0xBA: {"Oddish", typechart.Grass, typechart.Poison},
	0xBB: {"Gloom", typechart.Grass, typechart.Poison},
	0xBC: {"Vileplume", typechart.Grass, typechart.Poison},
	0xBD: {"Bellsprout", typechart.Grass, typechart.Poison},
	0xBE: {"Weepinbell", typechart.Grass, typechart.Poison},
	0xBF: {"Victreebel", typechart.Grass, typechart.Poison},
}

// SpeciesByID returns the species entry and whether the index is known.
func SpeciesByID(id schemas.SpeciesID) (Species, bool) {
	s, ok := speciesTable[id]
	return s, ok
}

// TypesOf returns a species' typing. Unknown indexes (corrupt reads, glitch
// slots) fall back to plain Normal rather than failing the lookup.
func TypesOf(id schemas.SpeciesID) (typechart.Category, typechart.Category) {
	if s, ok := speciesTable[id]; ok {
		return s.Primary, s.Secondary
	}
	return typechart.Normal, typechart.None
}
