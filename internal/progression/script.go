// Package progression sequences the story milestones from leaving Pallet
// Town through the Elite Four. Each milestone is a short list of sub-goals;
// the machine executes one sub-goal per invocation so work between state
// reads stays bounded, and records progress durably between sub-goals.
package progression

import "github.com/wrenhollow/bluebot/internal/navigation"

type goalKind int

const (
	// goalNavigate walks to a tile in the current area.
	goalNavigate goalKind = iota
	// goalEnterDoor approaches a door from the south and walks through.
	goalEnterDoor
	// goalExitArea walks south out of the current interior.
	goalExitArea
	// goalTalk walks to a tile, interacts, and mashes the dialog.
	goalTalk
	// goalInteractMash interacts at the current facing, then mashes.
	goalInteractMash
	// goalMash only mashes the dialog, for scripted battles that fire
	// without an interact press.
	goalMash
	// goalCross walks one direction until the area id changes.
	goalCross
	// goalHeal runs the full Pokemon Center visit for the current city.
	goalHeal
)

type subGoal struct {
	id      string
	kind    goalKind
	x, y    int
	presses int // dialog budget for talk/mash kinds
	dir     navigation.Direction
	budget  int // step budget for cross kinds
	repeat  int // extra navigate passes for stair-climb floors
}

func navigate(id string, x, y int) subGoal { return subGoal{id: id, kind: goalNavigate, x: x, y: y} }

func climb(id string, x, y, floors int) subGoal {
	return subGoal{id: id, kind: goalNavigate, x: x, y: y, repeat: floors}
}

func enterDoor(id string, x, y int) subGoal { return subGoal{id: id, kind: goalEnterDoor, x: x, y: y} }

func exitArea(id string) subGoal { return subGoal{id: id, kind: goalExitArea} }

func talk(id string, x, y, presses int) subGoal {
	return subGoal{id: id, kind: goalTalk, x: x, y: y, presses: presses}
}

func interactMash(id string, presses int) subGoal {
	return subGoal{id: id, kind: goalInteractMash, presses: presses}
}

func mash(id string, presses int) subGoal { return subGoal{id: id, kind: goalMash, presses: presses} }

func cross(id string, dir navigation.Direction, budget int) subGoal {
	return subGoal{id: id, kind: goalCross, dir: dir, budget: budget}
}

func heal(id string) subGoal { return subGoal{id: id, kind: goalHeal} }

// Milestone is one story beat. MinBadges is the badge count required before
// the milestone can start, which also anchors recovery when the saved record
// disagrees with the cartridge.
type Milestone struct {
	Name      string
	MinBadges int
	SubGoals  []subGoal
}

// script is the full campaign in order. Coordinates are tile positions on
// the named map.
var script = []Milestone{
	{
		Name: "pallet_start", MinBadges: 0,
		SubGoals: []subGoal{
			navigate("exit_house", 5, 7),
			enterDoor("enter_oaks_lab", 5, 13),
			talk("choose_starter", 9, 5, 80),
			mash("rival_battle", 200),
		},
	},
	{
		Name: "route1_to_viridian", MinBadges: 0,
		SubGoals: []subGoal{
			exitArea("leave_lab"),
			cross("route1_north", navigation.Up, 120),
		},
	},
	{
		Name: "viridian_parcel", MinBadges: 0,
		SubGoals: []subGoal{
			enterDoor("enter_mart", 20, 8),
			talk("receive_parcel", 4, 4, 40),
			exitArea("leave_mart"),
			cross("return_to_pallet", navigation.Down, 120),
			enterDoor("enter_oaks_lab", 5, 13),
			talk("deliver_parcel", 5, 5, 80),
			mash("receive_pokedex", 40),
			exitArea("leave_lab"),
		},
	},
	{
		Name: "viridian_forest", MinBadges: 0,
		SubGoals: []subGoal{
			navigate("city_north", 10, 0),
			cross("forest_traverse", navigation.Up, 1000),
		},
	},
	{
		Name: "pewter_brock", MinBadges: 0,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("enter_gym", 10, 5),
			talk("challenge_brock", 9, 3, 200),
			exitArea("leave_gym"),
		},
	},
	{
		Name: "mt_moon", MinBadges: 1,
		SubGoals: []subGoal{
			navigate("route3_east", 30, 8),
			enterDoor("enter_mt_moon", 2, 5),
			navigate("cave_b1f", 25, 15),
			navigate("cave_exit", 10, 5),
		},
	},
	{
		Name: "cerulean_misty", MinBadges: 1,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("enter_gym", 16, 5),
			talk("challenge_misty", 10, 3, 200),
			exitArea("leave_gym"),
		},
	},
	{
		Name: "nugget_bridge_bill", MinBadges: 2,
		SubGoals: []subGoal{
			navigate("city_north", 15, 0),
			cross("nugget_bridge", navigation.Up, 80),
			enterDoor("enter_cottage", 25, 5),
			talk("meet_bill", 5, 5, 100),
			exitArea("leave_cottage"),
		},
	},
	{
		Name: "vermilion_ltsurge", MinBadges: 2,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("board_ss_anne", 20, 18),
			talk("captain_cut", 10, 3, 60),
			exitArea("leave_ship"),
			enterDoor("enter_gym", 15, 8),
			talk("challenge_surge", 8, 3, 200),
			exitArea("leave_gym"),
		},
	},
	{
		Name: "rock_tunnel", MinBadges: 3,
		SubGoals: []subGoal{
			navigate("route9_east", 30, 5),
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("enter_tunnel", 2, 20),
			navigate("tunnel_b1f", 15, 25),
			navigate("tunnel_exit", 5, 10),
		},
	},
	{
		Name: "celadon_erika", MinBadges: 3,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("enter_game_corner", 20, 15),
			talk("poster_switch", 15, 20, 5),
			navigate("hideout_descend", 10, 10),
			mash("rocket_giovanni", 200),
			exitArea("leave_hideout"),
			enterDoor("enter_gym", 10, 8),
			talk("challenge_erika", 10, 3, 200),
			exitArea("leave_gym"),
		},
	},
	{
		Name: "pokemon_tower", MinBadges: 4,
		SubGoals: []subGoal{
			enterDoor("enter_tower", 10, 5),
			climb("climb_tower", 5, 0, 7),
			talk("rescue_fuji", 5, 5, 100),
			exitArea("leave_tower"),
		},
	},
	{
		Name: "saffron_sabrina", MinBadges: 4,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("enter_silph", 15, 10),
			talk("silph_giovanni", 10, 5, 300),
			exitArea("leave_silph"),
			enterDoor("enter_gym", 17, 5),
			talk("challenge_sabrina", 10, 3, 200),
			exitArea("leave_gym"),
		},
	},
	{
		Name: "fuchsia_koga", MinBadges: 5,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("enter_safari", 10, 5),
			talk("secret_house_surf", 20, 20, 60),
			exitArea("leave_safari"),
			enterDoor("warden_house", 8, 15),
			interactMash("gold_teeth_strength", 40),
			exitArea("leave_house"),
			enterDoor("enter_gym", 15, 5),
			talk("challenge_koga", 10, 3, 200),
			exitArea("leave_gym"),
		},
	},
	{
		Name: "cinnabar_blaine", MinBadges: 6,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("enter_mansion", 10, 8),
			navigate("find_secret_key", 10, 10),
			mash("mansion_dialog", 60),
			exitArea("leave_mansion"),
			enterDoor("enter_gym", 12, 8),
			talk("challenge_blaine", 10, 3, 200),
			exitArea("leave_gym"),
		},
	},
	{
		Name: "viridian_giovanni", MinBadges: 7,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			enterDoor("enter_gym", 15, 5),
			talk("challenge_giovanni", 10, 3, 200),
			exitArea("leave_gym"),
		},
	},
	{
		Name: "elite_four", MinBadges: 8,
		SubGoals: []subGoal{
			heal("heal"),
			exitArea("to_overworld"),
			navigate("route22_west", 5, 5),
			cross("route23_north", navigation.Up, 200),
			enterDoor("victory_road", 5, 0),
			climb("victory_road_floors", 15, 15, 3),
			exitArea("leave_victory_road"),
			enterDoor("enter_plateau", 10, 5),
			talk("battle_lorelei", 5, 3, 500),
			talk("battle_bruno", 5, 3, 500),
			talk("battle_agatha", 5, 3, 500),
			talk("battle_lance", 5, 3, 500),
			talk("battle_champion", 5, 3, 500),
		},
	},
	{
		Name: "game_complete", MinBadges: 8,
	},
}

// FinalMilestone is the terminal step name.
const FinalMilestone = "game_complete"

func milestoneIndex(name string) int {
	for i, m := range script {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// Milestones returns the campaign step names in order.
func Milestones() []string {
	names := make([]string, len(script))
	for i, m := range script {
		names[i] = m.Name
	}
	return names
}
