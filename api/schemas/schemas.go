// Package schemas holds the shared data types exchanged between the decision
// core and its collaborators: point-in-time snapshots of emulated game state,
// the progression record, and the interfaces the core consumes.
package schemas

// SpeciesID is the game's internal species index (not the dex number).
type SpeciesID uint8

// MoveID is the game's internal move index. Zero means an empty move slot.
type MoveID uint8

// ItemID identifies a bag item relevant to the decision core.
type ItemID string

// Healing items the triage policy knows about, ordered by potency.
const (
	ItemPotion      ItemID = "POTION"
	ItemSuperPotion ItemID = "SUPER POTION"
	ItemMaxPotion   ItemID = "MAX POTION"
)

// AreaID identifies one map/area of the overworld.
type AreaID uint8

// EncounterKind distinguishes wild encounters (escapable) from trainer
// battles (non-escapable).
type EncounterKind int

const (
	EncounterWild EncounterKind = iota + 1
	EncounterTrainer
)

func (k EncounterKind) String() string {
	switch k {
	case EncounterWild:
		return "wild"
	case EncounterTrainer:
		return "trainer"
	default:
		return "none"
	}
}

// MoveSlot is one of up to four equipped moves with its remaining PP.
type MoveSlot struct {
	ID MoveID
	PP int
}

// Empty reports whether the slot holds no move.
func (s MoveSlot) Empty() bool { return s.ID == 0 }

// CombatantState is one side's active creature during a battle.
// Invariants: 0 <= HP <= MaxHP, 0 <= Moves[i].PP.
type CombatantState struct {
	Species SpeciesID
	HP      int
	MaxHP   int
	Moves   [4]MoveSlot
}

// HPRatio returns HP/MaxHP, or 0 when MaxHP is unreadable.
func (c CombatantState) HPRatio() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.HP) / float64(c.MaxHP)
}

// CombatSnapshot is an immutable per-turn view of an active battle. Items
// carries the healing portion of the bag so action selection needs nothing
// beyond the snapshot and the static tables.
type CombatSnapshot struct {
	Ally       CombatantState
	Opponent   CombatantState
	Encounter  EncounterKind
	MenuCursor int
	Items      Inventory
}

// Inventory maps healing items to their remaining count.
type Inventory map[ItemID]int

// Has reports whether at least one of the item is carried.
func (inv Inventory) Has(id ItemID) bool { return inv[id] > 0 }

// Badges is the badge bitfield (bit 0 = Boulder ... bit 7 = Earth).
type Badges uint8

const (
	BadgeBoulder Badges = 1 << iota
	BadgeCascade
	BadgeThunder
	BadgeRainbow
	BadgeSoul
	BadgeMarsh
	BadgeVolcano
	BadgeEarth
)

// Count returns the number of badges held.
func (b Badges) Count() int {
	n := 0
	for v := b; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Snapshot is the once-per-tick read of observable world state. Combat is nil
// outside of battle. The core never mutates a snapshot.
type Snapshot struct {
	Combat       *CombatSnapshot
	Area         AreaID
	X, Y         int
	Badges       Badges
	DialogOpen   bool
	PartyHealthy bool
	NeedsHeal    bool
}

// InBattle reports whether a combat snapshot is present.
func (s *Snapshot) InBattle() bool { return s != nil && s.Combat != nil }

// Waypoint is a named target coordinate within one area.
type Waypoint struct {
	Area  AreaID
	X, Y  int
	Label string
}

// ProgressionRecord is the persisted progression state. It is owned by the
// progression state machine, written at sub-goal completion boundaries only,
// and read once at startup.
type ProgressionRecord struct {
	CurrentStep       string         `json:"current_step"`
	Badges            uint8          `json:"badges"`
	CompletedSubGoals []string       `json:"completed_sub_goals"`
	AttemptCounters   map[string]int `json:"attempt_counters"`
}

// NewProgressionRecord returns an empty record positioned at the first step.
func NewProgressionRecord(firstStep string) *ProgressionRecord {
	return &ProgressionRecord{
		CurrentStep:     firstStep,
		AttemptCounters: map[string]int{},
	}
}

// SubGoalDone reports whether the identified sub-goal has been completed.
func (r *ProgressionRecord) SubGoalDone(id string) bool {
	for _, done := range r.CompletedSubGoals {
		if done == id {
			return true
		}
	}
	return false
}

// MarkSubGoalDone records a completed sub-goal and clears its attempt counter.
// Idempotent.
func (r *ProgressionRecord) MarkSubGoalDone(id string) {
	if !r.SubGoalDone(id) {
		r.CompletedSubGoals = append(r.CompletedSubGoals, id)
	}
	delete(r.AttemptCounters, id)
}

// BumpAttempt increments and returns the failure counter for a sub-goal.
func (r *ProgressionRecord) BumpAttempt(id string) int {
	if r.AttemptCounters == nil {
		r.AttemptCounters = map[string]int{}
	}
	r.AttemptCounters[id]++
	return r.AttemptCounters[id]
}

// Clone returns a deep copy of the record.
func (r *ProgressionRecord) Clone() *ProgressionRecord {
	out := &ProgressionRecord{
		CurrentStep:       r.CurrentStep,
		Badges:            r.Badges,
		CompletedSubGoals: append([]string(nil), r.CompletedSubGoals...),
		AttemptCounters:   make(map[string]int, len(r.AttemptCounters)),
	}
	for k, v := range r.AttemptCounters {
		out.AttemptCounters[k] = v
	}
	return out
}
