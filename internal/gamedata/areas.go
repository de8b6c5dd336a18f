package gamedata

import "github.com/wrenhollow/bluebot/api/schemas"

// areaNames maps overworld map ids to readable names, used only for logs.
var areaNames = map[schemas.AreaID]string{
	0x00: "PALLET_TOWN",
	0x01: "VIRIDIAN_CITY",
	0x02: "PEWTER_CITY",
	0x03: "CERULEAN_CITY",
	0x0C: "VERMILION_CITY",
	0x0D: "LAVENDER_TOWN",
	0x11: "CELADON_CITY",
	0x12: "FUCHSIA_CITY",
	0x13: "CINNABAR_ISLAND",
	0x14: "INDIGO_PLATEAU",
	0x15: "SAFFRON_CITY",

	0x0E: "ROUTE_1",
	0x0F: "ROUTE_2",
	0x10: "ROUTE_3",
	0x16: "ROUTE_5",
	0x17: "ROUTE_6",
	0x18: "ROUTE_7",
	0x19: "ROUTE_8",
	0x1A: "ROUTE_9",
	0x1B: "ROUTE_10",
	0x1C: "ROUTE_11",
	0x1D: "ROUTE_12",
	0x1E: "ROUTE_13",
	0x1F: "ROUTE_14",
	0x20: "ROUTE_15",
	0x21: "ROUTE_16",
	0x22: "ROUTE_17",
	0x23: "ROUTE_18",
	0x2C: "ROUTE_22",
	0x41: "ROUTE_23",
	0x32: "ROUTE_24",
	0x33: "ROUTE_25",

	0x3B: "VIRIDIAN_FOREST",
	0x51: "MT_MOON_1F",
	0x52: "MT_MOON_B1F",
	0x53: "MT_MOON_B2F",
	0x54: "ROCK_TUNNEL_1F",
	0x55: "ROCK_TUNNEL_B1F",
	0x61: "POKEMON_TOWER_1F",
	0x62: "POKEMON_TOWER_2F",
	0x63: "POKEMON_TOWER_3F",
	0x64: "POKEMON_TOWER_4F",
	0x65: "POKEMON_TOWER_5F",
	0x66: "POKEMON_TOWER_6F",
	0x67: "POKEMON_TOWER_7F",
	0x6E: "SAFARI_ZONE",
	0x79: "SS_ANNE",
	0x82: "SILPH_CO_1F",
	0x8B: "ROCKET_HIDEOUT_B1F",
	0x8C: "ROCKET_HIDEOUT_B2F",
	0x8D: "ROCKET_HIDEOUT_B3F",
	0x8E: "ROCKET_HIDEOUT_B4F",
	0xA4: "POKEMON_MANSION_1F",
	0xA5: "POKEMON_MANSION_2F",
	0xA6: "POKEMON_MANSION_3F",
	0xA7: "POKEMON_MANSION_B1F",
	0xAE: "VICTORY_ROAD_1F",
	0xAF: "VICTORY_ROAD_2F",
	0xB0: "VICTORY_ROAD_3F",

	0xC5: "VIRIDIAN_GYM",
	0xC6: "PEWTER_GYM",
	0xC7: "CERULEAN_GYM",
	0xC8: "VERMILION_GYM",
	0xC9: "CELADON_GYM",
	0xCA: "FUCHSIA_GYM",
	0xCB: "SAFFRON_GYM",
	0xCC: "CINNABAR_GYM",

	0xD0: "VIRIDIAN_POKECENTER",
	0xD1: "PEWTER_POKECENTER",
	0xD2: "CERULEAN_POKECENTER",
	0xD3: "LAVENDER_POKECENTER",
	0xD4: "VERMILION_POKECENTER",
	0xD5: "CELADON_POKECENTER",
	0xD6: "FUCHSIA_POKECENTER",
	0xD7: "CINNABAR_POKECENTER",
	0xD8: "SAFFRON_POKECENTER",
	0xD9: "INDIGO_POKECENTER",

	0xC2: "REDS_HOUSE_2F",
	0xC3: "REDS_HOUSE_1F",
	0xC4: "OAKS_LAB",
}

// AreaName returns a readable name for the map id, or "UNKNOWN" when the id
// is not in the table.
func AreaName(id schemas.AreaID) string {
	if name, ok := areaNames[id]; ok {
		return name
	}
	return "UNKNOWN"
}

// pokecenterDoors maps a city map id to its Pokemon Center entrance tile.
var pokecenterDoors = map[schemas.AreaID]schemas.Waypoint{
	0x01: {Area: 0x01, X: 19, Y: 19, Label: "VIRIDIAN_POKECENTER"},
	0x02: {Area: 0x02, X: 10, Y: 11, Label: "PEWTER_POKECENTER"},
	0x03: {Area: 0x03, X: 16, Y: 17, Label: "CERULEAN_POKECENTER"},
	0x0C: {Area: 0x0C, X: 15, Y: 5, Label: "VERMILION_POKECENTER"},
	0x0D: {Area: 0x0D, X: 5, Y: 3, Label: "LAVENDER_POKECENTER"},
	0x11: {Area: 0x11, X: 28, Y: 11, Label: "CELADON_POKECENTER"},
	0x12: {Area: 0x12, X: 18, Y: 3, Label: "FUCHSIA_POKECENTER"},
	0x13: {Area: 0x13, X: 11, Y: 7, Label: "CINNABAR_POKECENTER"},
	0x14: {Area: 0x14, X: 7, Y: 9, Label: "INDIGO_POKECENTER"},
	0x15: {Area: 0x15, X: 17, Y: 20, Label: "SAFFRON_POKECENTER"},
}

// PokecenterCounter is the nurse counter tile, at the same position inside
// every center interior.
var PokecenterCounter = schemas.Waypoint{X: 7, Y: 4, Label: "NURSE_COUNTER"}

// PokecenterDoor returns the center entrance for the given city, if one is
// known.
func PokecenterDoor(area schemas.AreaID) (schemas.Waypoint, bool) {
	d, ok := pokecenterDoors[area]
	return d, ok
}
