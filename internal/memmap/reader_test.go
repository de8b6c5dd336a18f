package memmap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// fakeBus serves reads from a sparse address map; unset addresses read zero.
type fakeBus struct {
	mem     map[uint16]byte
	failAt  uint16
	failErr error
}

func (b *fakeBus) ReadByte(ctx context.Context, addr uint16) (byte, error) {
	if b.failErr != nil && addr == b.failAt {
		return 0, b.failErr
	}
	return b.mem[addr], nil
}

func (b *fakeBus) set16(addr uint16, v int) {
	b.mem[addr] = byte(v >> 8)
	b.mem[addr+1] = byte(v)
}

func newBus() *fakeBus {
	b := &fakeBus{mem: map[uint16]byte{}}
	// One healthy party member so triage flags have a baseline.
	b.mem[addrPartyCount] = 1
	b.set16(addrPartyHP, 20)
	b.set16(addrPartyMaxHP, 20)
	return b
}

func TestSnapshotOverworld(t *testing.T) {
	b := newBus()
	b.mem[addrMapID] = 0x02
	b.mem[addrPlayerX] = 10
	b.mem[addrPlayerY] = 11
	b.mem[addrBadges] = 0b0000_0011
	b.mem[addrDialogBox] = 0

	snap, err := New(b, zap.NewNop()).Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, schemas.AreaID(0x02), snap.Area)
	assert.Equal(t, 10, snap.X)
	assert.Equal(t, 11, snap.Y)
	assert.Equal(t, 2, snap.Badges.Count())
	assert.False(t, snap.DialogOpen)
	assert.False(t, snap.InBattle())
	assert.True(t, snap.PartyHealthy)
	assert.False(t, snap.NeedsHeal)
}

func TestSnapshotBattleState(t *testing.T) {
	b := newBus()
	b.mem[addrBattleType] = 1 // wild
	b.mem[addrPlayerSpecies] = 0xB1
	b.set16(addrPlayerHP, 300)
	b.set16(addrPlayerMaxHP, 312)
	b.mem[addrPlayerMove1] = 0x21
	b.mem[addrPlayerMove1+1] = 0x55
	b.mem[addrPlayerPP1] = 15
	b.mem[addrPlayerPP1+1] = 0
	b.mem[addrEnemySpecies] = 0x19
	b.set16(addrEnemyHP, 44)
	b.set16(addrEnemyMaxHP, 50)
	b.mem[addrMenuCursor] = 0

	snap, err := New(b, zap.NewNop()).Snapshot(context.Background())

	require.NoError(t, err)
	require.True(t, snap.InBattle())
	combat := snap.Combat
	assert.Equal(t, schemas.EncounterWild, combat.Encounter)
	assert.Equal(t, schemas.SpeciesID(0xB1), combat.Ally.Species)
	assert.Equal(t, 300, combat.Ally.HP, "HP is big endian")
	assert.Equal(t, 312, combat.Ally.MaxHP)
	assert.Equal(t, schemas.MoveID(0x21), combat.Ally.Moves[0].ID)
	assert.Equal(t, 15, combat.Ally.Moves[0].PP)
	assert.Equal(t, 0, combat.Ally.Moves[1].PP)
	assert.True(t, combat.Ally.Moves[2].Empty())
	assert.Equal(t, schemas.SpeciesID(0x19), combat.Opponent.Species)
	assert.Equal(t, 44, combat.Opponent.HP)
}

func TestSnapshotTrainerBattle(t *testing.T) {
	b := newBus()
	b.mem[addrBattleType] = 2
	b.set16(addrPlayerMaxHP, 20)
	b.set16(addrPlayerHP, 20)
	b.set16(addrEnemyMaxHP, 20)
	b.set16(addrEnemyHP, 20)

	snap, err := New(b, zap.NewNop()).Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, schemas.EncounterTrainer, snap.Combat.Encounter)
}

func TestSnapshotReadsBag(t *testing.T) {
	b := newBus()
	b.mem[addrBattleType] = 1
	b.set16(addrPlayerMaxHP, 20)
	b.set16(addrPlayerHP, 20)
	b.set16(addrEnemyMaxHP, 20)
	b.set16(addrEnemyHP, 20)
	b.mem[addrBagCount] = 3
	b.mem[addrBagItems] = itemPotion
	b.mem[addrBagItems+1] = 4
	b.mem[addrBagItems+2] = 0x04 // poke ball, not a healing item
	b.mem[addrBagItems+3] = 9
	b.mem[addrBagItems+4] = itemMaxPotion
	b.mem[addrBagItems+5] = 1

	snap, err := New(b, zap.NewNop()).Snapshot(context.Background())

	require.NoError(t, err)
	items := snap.Combat.Items
	assert.Equal(t, 4, items[schemas.ItemPotion])
	assert.Equal(t, 1, items[schemas.ItemMaxPotion])
	assert.False(t, items.Has(schemas.ItemSuperPotion))
}

func TestSnapshotNeedsHealBelowThreshold(t *testing.T) {
	b := newBus()
	b.mem[addrPartyCount] = 2
	b.set16(addrPartyHP, 20)
	b.set16(addrPartyMaxHP, 20)
	// Slot 2 at 25% of max.
	stride := uint16(partySlotStride)
	b.set16(addrPartyHP+stride, 5)
	b.set16(addrPartyMaxHP+stride, 20)

	snap, err := New(b, zap.NewNop()).Snapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.NeedsHeal)
	assert.True(t, snap.PartyHealthy)
}

func TestSnapshotFaintedParty(t *testing.T) {
	b := newBus()
	b.set16(addrPartyHP, 0)

	snap, err := New(b, zap.NewNop()).Snapshot(context.Background())

	require.NoError(t, err)
	assert.False(t, snap.PartyHealthy)
}

func TestSnapshotBusFailureWrapsCollaboratorError(t *testing.T) {
	b := newBus()
	b.failAt = addrBadges
	b.failErr = errors.New("socket closed")

	_, err := New(b, zap.NewNop()).Snapshot(context.Background())

	assert.ErrorIs(t, err, schemas.ErrCollaboratorUnavailable)
}
