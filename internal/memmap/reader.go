// Package memmap builds world snapshots from raw Game Boy work RAM. The
// addresses follow the pret/pokered disassembly labels for Blue.
package memmap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// Work RAM addresses. Multi-byte HP values are stored big endian.
const (
	addrBattleType = 0xD057 // 0 = none, 1 = wild, 2 = trainer
	addrMapID      = 0xD35E
	addrPlayerY    = 0xD361
	addrPlayerX    = 0xD362
	addrBadges     = 0xD356
	addrDialogBox  = 0xC4F1
	addrMenuCursor = 0xCC26

	addrPlayerSpecies = 0xD014
	addrPlayerHP      = 0xD015
	addrPlayerMaxHP   = 0xD023
	addrPlayerMove1   = 0xD01C
	addrPlayerPP1     = 0xD02D

	addrEnemySpecies = 0xCFD9
	addrEnemyHP      = 0xCFE6
	addrEnemyMaxHP   = 0xCFF4

	addrPartyCount   = 0xD163
	addrPartySpecies = 0xD164
	addrPartyHP      = 0xD16C
	addrPartyMaxHP   = 0xD18D
	partySlotStride  = 0x2C
	maxPartySize     = 6

	addrBagCount = 0xD31D
	addrBagItems = 0xD31E
	maxBagSlots  = 20
	bagListEnd   = 0xFF
)

// healRatio is the party HP fraction below which a center detour is due.
const healRatio = 0.30

// Bag item ids for the healing items the battle policy can reach for.
const (
	itemMaxPotion   = 0x11
	itemSuperPotion = 0x13
	itemPotion      = 0x14
)

// MemoryBus reads one byte of emulator memory. Implementations wrap the
// actual emulator process boundary.
type MemoryBus interface {
	ReadByte(ctx context.Context, addr uint16) (byte, error)
}

// Reader implements schemas.StateReader over a MemoryBus.
type Reader struct {
	bus    MemoryBus
	logger *zap.Logger
}

// New returns a Reader over the given bus.
func New(bus MemoryBus, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{bus: bus, logger: logger.Named("memmap")}
}

func (r *Reader) read(ctx context.Context, addr uint16) (byte, error) {
	b, err := r.bus.ReadByte(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("memmap: read 0x%04X: %v: %w", addr, err, schemas.ErrCollaboratorUnavailable)
	}
	return b, nil
}

// read16 reads a big-endian 16-bit value at addr.
func (r *Reader) read16(ctx context.Context, addr uint16) (int, error) {
	hi, err := r.read(ctx, addr)
	if err != nil {
		return 0, err
	}
	lo, err := r.read(ctx, addr+1)
	if err != nil {
		return 0, err
	}
	return int(hi)<<8 | int(lo), nil
}

// Snapshot reads the full observable world state once. Combat is populated
// only while the battle flag is set.
func (r *Reader) Snapshot(ctx context.Context) (*schemas.Snapshot, error) {
	area, err := r.read(ctx, addrMapID)
	if err != nil {
		return nil, err
	}
	y, err := r.read(ctx, addrPlayerY)
	if err != nil {
		return nil, err
	}
	x, err := r.read(ctx, addrPlayerX)
	if err != nil {
		return nil, err
	}
	badges, err := r.read(ctx, addrBadges)
	if err != nil {
		return nil, err
	}
	dialog, err := r.read(ctx, addrDialogBox)
	if err != nil {
		return nil, err
	}

	snap := &schemas.Snapshot{
		Area:       schemas.AreaID(area),
		X:          int(x),
		Y:          int(y),
		Badges:     schemas.Badges(badges),
		DialogOpen: dialog != 0,
	}

	if err := r.readParty(ctx, snap); err != nil {
		return nil, err
	}

	battleType, err := r.read(ctx, addrBattleType)
	if err != nil {
		return nil, err
	}
	if battleType != 0 {
		combat, err := r.readCombat(ctx, battleType)
		if err != nil {
			return nil, err
		}
		snap.Combat = combat
	}
	return snap, nil
}

// readParty scans up to six party slots and derives the triage flags.
func (r *Reader) readParty(ctx context.Context, snap *schemas.Snapshot) error {
	count, err := r.read(ctx, addrPartyCount)
	if err != nil {
		return err
	}
	if count > maxPartySize {
		count = maxPartySize
	}
	for slot := 0; slot < int(count); slot++ {
		stride := uint16(slot * partySlotStride)
		hp, err := r.read16(ctx, addrPartyHP+stride)
		if err != nil {
			return err
		}
		maxHP, err := r.read16(ctx, addrPartyMaxHP+stride)
		if err != nil {
			return err
		}
		if hp > 0 {
			snap.PartyHealthy = true
		}
		if maxHP > 0 && float64(hp)/float64(maxHP) < healRatio {
			snap.NeedsHeal = true
		}
	}
	return nil
}

func (r *Reader) readCombat(ctx context.Context, battleType byte) (*schemas.CombatSnapshot, error) {
	kind := schemas.EncounterWild
	if battleType >= 2 {
		kind = schemas.EncounterTrainer
	}

	ally, err := r.readCombatant(ctx, addrPlayerSpecies, addrPlayerHP, addrPlayerMaxHP)
	if err != nil {
		return nil, err
	}
	for slot := 0; slot < 4; slot++ {
		id, err := r.read(ctx, addrPlayerMove1+uint16(slot))
		if err != nil {
			return nil, err
		}
		pp, err := r.read(ctx, addrPlayerPP1+uint16(slot))
		if err != nil {
			return nil, err
		}
		ally.Moves[slot] = schemas.MoveSlot{ID: schemas.MoveID(id), PP: int(pp)}
	}

	opponent, err := r.readCombatant(ctx, addrEnemySpecies, addrEnemyHP, addrEnemyMaxHP)
	if err != nil {
		return nil, err
	}

	cursor, err := r.read(ctx, addrMenuCursor)
	if err != nil {
		return nil, err
	}
	items, err := r.readBag(ctx)
	if err != nil {
		return nil, err
	}

	return &schemas.CombatSnapshot{
		Ally:       ally,
		Opponent:   opponent,
		Encounter:  kind,
		MenuCursor: int(cursor),
		Items:      items,
	}, nil
}

func (r *Reader) readCombatant(ctx context.Context, speciesAddr, hpAddr, maxHPAddr uint16) (schemas.CombatantState, error) {
	var c schemas.CombatantState
	species, err := r.read(ctx, speciesAddr)
	if err != nil {
		return c, err
	}
	hp, err := r.read16(ctx, hpAddr)
	if err != nil {
		return c, err
	}
	maxHP, err := r.read16(ctx, maxHPAddr)
	if err != nil {
		return c, err
	}
	c.Species = schemas.SpeciesID(species)
	c.HP = hp
	c.MaxHP = maxHP
	return c, nil
}

// readBag collects the healing items the battle policy knows about from the
// item list, which is (id, quantity) pairs terminated by 0xFF.
func (r *Reader) readBag(ctx context.Context) (schemas.Inventory, error) {
	count, err := r.read(ctx, addrBagCount)
	if err != nil {
		return nil, err
	}
	if count > maxBagSlots {
		count = maxBagSlots
	}
	inv := schemas.Inventory{}
	for slot := 0; slot < int(count); slot++ {
		base := addrBagItems + uint16(slot*2)
		id, err := r.read(ctx, base)
		if err != nil {
			return nil, err
		}
		if id == bagListEnd {
			break
		}
		qty, err := r.read(ctx, base+1)
		if err != nil {
			return nil, err
		}
		switch id {
		case itemPotion:
			inv[schemas.ItemPotion] += int(qty)
		case itemSuperPotion:
			inv[schemas.ItemSuperPotion] += int(qty)
		case itemMaxPotion:
			inv[schemas.ItemMaxPotion] += int(qty)
		}
	}
	return inv, nil
}
