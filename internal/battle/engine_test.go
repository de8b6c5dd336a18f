package battle

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// -- Mock input controller --

type mockInput struct {
	mu      sync.Mutex
	presses []schemas.Button
	frames  int
}

func (m *mockInput) Press(_ context.Context, b schemas.Button, hold int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.presses = append(m.presses, b)
	m.frames += hold
	return nil
}

func (m *mockInput) Advance(_ context.Context, frames int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames += frames
	return nil
}

// -- Fixtures --

// Move ids used throughout: 0x21 Tackle (Normal 35), 0x34 Ember (Fire 40),
// 0x37 Water Gun (Water 40), 0x55 Thunderbolt (Electric 95),
// 0x2D Growl (status), 0x54 Thundershock (Electric 40).

func snapshotWith(ally [4]schemas.MoveSlot, opponent schemas.SpeciesID, kind schemas.EncounterKind) *schemas.CombatSnapshot {
	return &schemas.CombatSnapshot{
		Ally: schemas.CombatantState{
			Species: 0xB0, // Squirtle
			HP:      20, MaxHP: 20,
			Moves: ally,
		},
		Opponent: schemas.CombatantState{
			Species: opponent,
			HP:      15, MaxHP: 15,
		},
		Encounter: kind,
		Items:     schemas.Inventory{},
	}
}

func newTestEngine(t *testing.T) (*Engine, *mockInput) {
	t.Helper()
	input := &mockInput{}
	return New(DefaultConfig(), input, zap.NewNop()), input
}

// -- Decide --

func TestDecideSkipsDepletedSlots(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	// Thunderbolt would dominate but has no PP left.
	snap := snapshotWith([4]schemas.MoveSlot{
		{ID: 0x55, PP: 0},
		{ID: 0x21, PP: 10},
	}, 0x23 /* Pidgey */, schemas.EncounterWild)

	action := engine.Decide(snap)
	require.Equal(t, schemas.ActionUseMove, action.Kind)
	assert.Equal(t, 1, action.Slot, "must not pick the 0-PP slot")
}

func TestDecidePrefersEffectiveness(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	// Against Geodude (Rock/Ground): Water Gun 40x4=160 beats Thunderbolt
	// 95x0=0 and Tackle 35x0.5=17.5.
	snap := snapshotWith([4]schemas.MoveSlot{
		{ID: 0x21, PP: 10},
		{ID: 0x55, PP: 10},
		{ID: 0x37, PP: 10},
	}, 0xA8, schemas.EncounterWild)

	action := engine.Decide(snap)
	require.Equal(t, schemas.ActionUseMove, action.Kind)
	assert.Equal(t, 2, action.Slot)
}

func TestDecidePrefersHigherPowerAtEqualEffectiveness(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	// Both Electric vs Pidgey (Normal/Flying, 2x): Thunderbolt 95 > Thundershock 40.
	snap := snapshotWith([4]schemas.MoveSlot{
		{ID: 0x54, PP: 10},
		{ID: 0x55, PP: 10},
	}, 0x23, schemas.EncounterWild)

	action := engine.Decide(snap)
	require.Equal(t, schemas.ActionUseMove, action.Kind)
	assert.Equal(t, 1, action.Slot)
}

func TestDecideTieBreaksOnLowestSlot(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	// Identical move in two slots scores identically; the lower slot wins.
	snap := snapshotWith([4]schemas.MoveSlot{
		{ID: 0x21, PP: 5},
		{ID: 0x21, PP: 5},
	}, 0x23, schemas.EncounterWild)

	action := engine.Decide(snap)
	require.Equal(t, schemas.ActionUseMove, action.Kind)
	assert.Equal(t, 0, action.Slot)
}

func TestDecideHealOverridesLethalMove(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	snap := snapshotWith([4]schemas.MoveSlot{
		{ID: 0x55, PP: 10}, // would be lethal
	}, 0x23, schemas.EncounterWild)
	snap.Ally.HP = 3 // ratio 0.15
	snap.Items = schemas.Inventory{schemas.ItemMaxPotion: 1}

	action := engine.Decide(snap)
	require.Equal(t, schemas.ActionUseItem, action.Kind)
	assert.Equal(t, schemas.ItemMaxPotion, action.Item)
}

func TestDecideMidHealthUsesWeakerHeal(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	snap := snapshotWith([4]schemas.MoveSlot{{ID: 0x21, PP: 10}}, 0x23, schemas.EncounterWild)
	snap.Ally.HP = 9 // ratio 0.45
	snap.Items = schemas.Inventory{schemas.ItemPotion: 2, schemas.ItemMaxPotion: 1}

	action := engine.Decide(snap)
	require.Equal(t, schemas.ActionUseItem, action.Kind)
	assert.Equal(t, schemas.ItemPotion, action.Item)
}

func TestDecideTrainerLowHealthNoItemNeverFlees(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	snap := snapshotWith([4]schemas.MoveSlot{{ID: 0x21, PP: 10}}, 0x23, schemas.EncounterTrainer)
	snap.Ally.HP = 2

	for turn := 0; turn < 10; turn++ {
		action := engine.Decide(snap)
		assert.NotEqual(t, schemas.ActionFlee, action.Kind, "trainer battles are non-escapable")
	}
}

func TestDecideOutOfPP(t *testing.T) {
	t.Parallel()

	empty := [4]schemas.MoveSlot{
		{ID: 0x21, PP: 0},
		{ID: 0x34, PP: 0},
	}

	t.Run("wild flees", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		action := engine.Decide(snapshotWith(empty, 0x23, schemas.EncounterWild))
		assert.Equal(t, schemas.ActionFlee, action.Kind)
	})

	t.Run("trainer struggles", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		action := engine.Decide(snapshotWith(empty, 0x23, schemas.EncounterTrainer))
		assert.Equal(t, schemas.ActionStruggle, action.Kind)
	})
}

func TestDecideFleesAfterRepeatedIneffectiveTurns(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	// Only a Normal move against Gastly (Ghost/Poison): 0x, eliminated.
	snap := snapshotWith([4]schemas.MoveSlot{{ID: 0x21, PP: 10}}, 0x19, schemas.EncounterWild)

	threshold := DefaultConfig().FleeAfterIneffectiveTurns
	for turn := 1; turn < threshold; turn++ {
		action := engine.Decide(snap)
		require.Equal(t, schemas.ActionUseMove, action.Kind, "turn %d must not flee yet", turn)
		assert.Equal(t, 0, action.Slot, "chip with the first slot until the threshold")
	}
	assert.Equal(t, schemas.ActionFlee, engine.Decide(snap).Kind)
}

func TestDecideWildStatusStallCountsTowardFlee(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	// Tackle is immune-blocked vs Gastly; Growl keeps the turns moving.
	snap := snapshotWith([4]schemas.MoveSlot{
		{ID: 0x21, PP: 10},
		{ID: 0x2D, PP: 10},
	}, 0x19, schemas.EncounterWild)

	threshold := DefaultConfig().FleeAfterIneffectiveTurns
	for turn := 1; turn < threshold; turn++ {
		action := engine.Decide(snap)
		require.Equal(t, schemas.ActionUseMove, action.Kind, "turn %d must not flee yet", turn)
		assert.Equal(t, 1, action.Slot)
	}
	assert.Equal(t, schemas.ActionFlee, engine.Decide(snap).Kind)
}

func TestDecideEffectiveTurnResetsFleeCounter(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	blocked := snapshotWith([4]schemas.MoveSlot{{ID: 0x21, PP: 10}}, 0x19, schemas.EncounterWild)
	open := snapshotWith([4]schemas.MoveSlot{{ID: 0x21, PP: 10}}, 0x23, schemas.EncounterWild)

	threshold := DefaultConfig().FleeAfterIneffectiveTurns
	for turn := 1; turn < threshold; turn++ {
		engine.Decide(blocked)
	}
	require.Equal(t, schemas.ActionUseMove, engine.Decide(open).Kind, "a connecting turn resets the count")
	for turn := 1; turn < threshold; turn++ {
		assert.NotEqual(t, schemas.ActionFlee, engine.Decide(blocked).Kind)
	}
}

func TestDecideIneffectiveAgainstTrainerFallsBackToStatus(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	// Tackle is immune-blocked vs Gastly; Growl is still usable.
	snap := snapshotWith([4]schemas.MoveSlot{
		{ID: 0x21, PP: 10},
		{ID: 0x2D, PP: 10},
	}, 0x19, schemas.EncounterTrainer)

	action := engine.Decide(snap)
	require.Equal(t, schemas.ActionUseMove, action.Kind)
	assert.Equal(t, 1, action.Slot)
}

func TestDecideCorruptSnapshotWaits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*schemas.CombatSnapshot)
	}{
		{"zero max hp", func(s *schemas.CombatSnapshot) { s.Ally.MaxHP = 0 }},
		{"hp above max", func(s *schemas.CombatSnapshot) { s.Ally.HP = 999 }},
		{"negative pp", func(s *schemas.CombatSnapshot) { s.Ally.Moves[0].PP = -1 }},
		{"opponent unreadable", func(s *schemas.CombatSnapshot) { s.Opponent.MaxHP = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newTestEngine(t)
			snap := snapshotWith([4]schemas.MoveSlot{{ID: 0x21, PP: 10}}, 0x23, schemas.EncounterWild)
			tt.mutate(snap)
			assert.Equal(t, schemas.ActionWait, engine.Decide(snap).Kind)
		})
	}

	t.Run("nil snapshot", func(t *testing.T) {
		engine, _ := newTestEngine(t)
		assert.Equal(t, schemas.ActionWait, engine.Decide(nil).Kind)
	})
}

// -- Execute --

func TestExecuteFightWalksMoveList(t *testing.T) {
	t.Parallel()
	engine, input := newTestEngine(t)

	err := engine.Execute(context.Background(), schemas.UseMove(2))
	require.NoError(t, err)

	// Confirm FIGHT, two steps down the move list, confirm the move.
	assert.Equal(t, []schemas.Button{
		schemas.ButtonA,
		schemas.ButtonDown,
		schemas.ButtonDown,
		schemas.ButtonA,
	}, input.presses)
	assert.Equal(t, PhaseAwaitingResolution, engine.Phase())
}

func TestExecuteFleeWalksToRun(t *testing.T) {
	t.Parallel()
	engine, input := newTestEngine(t)

	err := engine.Execute(context.Background(), schemas.Flee())
	require.NoError(t, err)

	assert.Equal(t, []schemas.Button{
		schemas.ButtonRight,
		schemas.ButtonDown,
		schemas.ButtonA,
	}, input.presses)
}

func TestExecuteSeedsWalkFromMenuCursor(t *testing.T) {
	t.Parallel()
	engine, input := newTestEngine(t)

	// Cursor left on RUN from the previous turn: fleeing needs no walk.
	snap := snapshotWith([4]schemas.MoveSlot{
		{ID: 0x21, PP: 0},
		{ID: 0x34, PP: 0},
	}, 0x23, schemas.EncounterWild)
	snap.MenuCursor = 3
	require.Equal(t, schemas.ActionFlee, engine.Decide(snap).Kind)

	require.NoError(t, engine.Execute(context.Background(), schemas.Flee()))
	assert.Equal(t, []schemas.Button{schemas.ButtonA}, input.presses)
}

func TestExecuteFightWalksBackFromItem(t *testing.T) {
	t.Parallel()
	engine, input := newTestEngine(t)

	snap := snapshotWith([4]schemas.MoveSlot{{ID: 0x21, PP: 10}}, 0x23, schemas.EncounterWild)
	snap.MenuCursor = 2 // ITEM
	require.Equal(t, schemas.ActionUseMove, engine.Decide(snap).Kind)

	require.NoError(t, engine.Execute(context.Background(), schemas.UseMove(0)))
	assert.Equal(t, []schemas.Button{
		schemas.ButtonUp,
		schemas.ButtonA,
		schemas.ButtonA,
	}, input.presses)
}

func TestExecuteWaitOnlyAdvances(t *testing.T) {
	t.Parallel()
	engine, input := newTestEngine(t)

	err := engine.Execute(context.Background(), schemas.Wait())
	require.NoError(t, err)
	assert.Empty(t, input.presses)
	assert.Equal(t, DefaultConfig().AnimationFrames, input.frames)
}

func TestPhaseCycle(t *testing.T) {
	t.Parallel()
	engine, _ := newTestEngine(t)

	assert.Equal(t, PhaseDeciding, engine.Phase())
	require.NoError(t, engine.Execute(context.Background(), schemas.Wait()))
	assert.Equal(t, PhaseAwaitingResolution, engine.Phase())
	engine.TurnResolved()
	assert.Equal(t, PhaseDeciding, engine.Phase())
	engine.EndBattle()
	assert.Equal(t, PhaseEnded, engine.Phase())
}
