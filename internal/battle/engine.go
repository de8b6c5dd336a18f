// Package battle implements action selection and execution for turn-based
// encounters. Decide is a pure ranking over the snapshot and the static
// tables; Execute walks the battle menu through the input controller.
package battle

import (
	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
	"github.com/wrenhollow/bluebot/internal/gamedata"
	"github.com/wrenhollow/bluebot/internal/typechart"
)

// Phase tracks where the engine is within one battle turn.
type Phase int

const (
	PhaseDeciding Phase = iota
	PhaseExecuting
	PhaseAwaitingResolution
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseDeciding:
		return "deciding"
	case PhaseExecuting:
		return "executing"
	case PhaseAwaitingResolution:
		return "awaiting_resolution"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Config tunes the decision policy.
type Config struct {
	// LowHPThreshold triggers the strongest available heal.
	LowHPThreshold float64
	// MidHPThreshold triggers a weaker heal.
	MidHPThreshold float64
	// FleeAfterIneffectiveTurns is the outleveled proxy: flee a wild
	// encounter after this many consecutive turns on which no damaging
	// candidate had any effect. No level data is modeled, so repeated
	// ineffectiveness stands in for being outmatched.
	FleeAfterIneffectiveTurns int
	// StatusMoveScore is the flat score for non-damaging moves, low enough
	// that any effective damaging move wins.
	StatusMoveScore float64
	// MenuFrames / ConfirmFrames / AnimationFrames bound the settle waits
	// during execution.
	MenuFrames      int
	ConfirmFrames   int
	AnimationFrames int
}

// DefaultConfig mirrors the tuned values of the reference bot.
func DefaultConfig() Config {
	return Config{
		LowHPThreshold:            0.20,
		MidHPThreshold:            0.50,
		FleeAfterIneffectiveTurns: 3,
		StatusMoveScore:           0.1,
		MenuFrames:                10,
		ConfirmFrames:             30,
		AnimationFrames:           60,
	}
}

// Engine selects and executes one battle action per turn.
type Engine struct {
	cfg    Config
	input  schemas.InputController
	logger *zap.Logger

	phase            Phase
	ineffectiveTurns int
	menuCursor       int
}

// New returns an engine ready for the first turn of a battle.
func New(cfg Config, input schemas.InputController, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		input:  input,
		logger: logger.Named("battle"),
		phase:  PhaseDeciding,
	}
}

// Phase reports the current turn phase.
func (e *Engine) Phase() Phase { return e.phase }

// EndBattle marks the battle over and clears per-battle counters, readying
// the engine for the next encounter.
func (e *Engine) EndBattle() {
	e.phase = PhaseEnded
	e.ineffectiveTurns = 0
	e.menuCursor = 0
}

// TurnResolved moves AwaitingResolution back to Deciding for the next turn.
func (e *Engine) TurnResolved() {
	if e.phase == PhaseAwaitingResolution {
		e.phase = PhaseDeciding
	}
}

// candidate is one usable move slot with its computed score.
type candidate struct {
	slot  int
	move  gamedata.Move
	score float64
}

// Decide picks the action for this turn. It never returns a move slot with
// zero PP, and degrades to Wait when the snapshot is inconsistent rather
// than erroring.
func (e *Engine) Decide(snap *schemas.CombatSnapshot) schemas.Action {
	if !snapshotUsable(snap) {
		e.logger.Warn("inconsistent combat snapshot, waiting out the turn")
		return schemas.Wait()
	}
	e.menuCursor = snap.MenuCursor

	// Health preservation outranks damage output.
	if item, ok := e.healChoice(snap); ok {
		e.logger.Info("low health, using item",
			zap.Float64("hp_ratio", snap.Ally.HPRatio()),
			zap.String("item", string(item)))
		return schemas.UseItem(item)
	}

	usable, damaging, status := e.rankMoves(snap) // damaging excludes 0x matchups

	wild := snap.Encounter == schemas.EncounterWild

	// Out of PP entirely: the game forces Struggle; a wild encounter is not
	// worth struggling through.
	if len(usable) == 0 {
		if wild {
			e.logger.Info("no usable moves, fleeing wild encounter")
			return schemas.Flee()
		}
		forced, _ := gamedata.MoveByID(gamedata.StruggleID)
		e.logger.Info("out of pp against trainer, forced move",
			zap.String("move", forced.Name))
		return schemas.Struggle()
	}

	if len(damaging) == 0 {
		e.ineffectiveTurns++
		if wild && e.ineffectiveTurns >= e.cfg.FleeAfterIneffectiveTurns {
			e.logger.Info("repeatedly ineffective, fleeing wild encounter",
				zap.Int("turns", e.ineffectiveTurns))
			return schemas.Flee()
		}
		if len(status) > 0 {
			return schemas.UseMove(status[0].slot)
		}
		// Every candidate is immune-blocked. Chip with the first slot; the
		// turn counter above decides when a wild encounter gives up.
		return schemas.UseMove(usable[0].slot)
	}
	e.ineffectiveTurns = 0

	best := damaging[0]
	for _, c := range damaging[1:] {
		// Strictly greater keeps the lowest slot on ties.
		if c.score > best.score {
			best = c
		}
	}
	e.logger.Debug("selected move",
		zap.Int("slot", best.slot),
		zap.String("move", best.move.Name),
		zap.Float64("score", best.score))
	return schemas.UseMove(best.slot)
}

// rankMoves splits the usable slots into damaging candidates (nonzero
// effectiveness, scored power x multiplier) and status candidates.
func (e *Engine) rankMoves(snap *schemas.CombatSnapshot) (usable, damaging, status []candidate) {
	defPrimary, defSecondary := gamedata.TypesOf(snap.Opponent.Species)

	for slot, ms := range snap.Ally.Moves {
		if ms.Empty() || ms.PP <= 0 {
			continue
		}
		move, ok := gamedata.MoveByID(ms.ID)
		if !ok {
			// Unknown move id from a corrupt read; not a usable candidate.
			continue
		}
		c := candidate{slot: slot, move: move}
		usable = append(usable, c)

		if move.Kind() == gamedata.MoveStatus {
			c.score = e.cfg.StatusMoveScore
			status = append(status, c)
			continue
		}
		mult := typechart.Multiplier(move.Category, defPrimary, defSecondary)
		if mult == 0 {
			continue // immune matchup, out of fight consideration
		}
		c.score = float64(move.Power) * mult
		damaging = append(damaging, c)
	}
	return usable, damaging, status
}

// healChoice applies the two-tier triage policy: the strongest carried heal
// below the low threshold, a weaker one below the mid threshold.
func (e *Engine) healChoice(snap *schemas.CombatSnapshot) (schemas.ItemID, bool) {
	ratio := snap.Ally.HPRatio()
	inv := snap.Items

	if ratio < e.cfg.LowHPThreshold {
		for _, item := range []schemas.ItemID{schemas.ItemMaxPotion, schemas.ItemSuperPotion, schemas.ItemPotion} {
			if inv.Has(item) {
				return item, true
			}
		}
		return "", false
	}
	if ratio < e.cfg.MidHPThreshold {
		for _, item := range []schemas.ItemID{schemas.ItemPotion, schemas.ItemSuperPotion} {
			if inv.Has(item) {
				return item, true
			}
		}
	}
	return "", false
}

// snapshotUsable rejects obviously corrupt reads: HP out of range, negative
// PP, or an unreadable max HP on either side.
func snapshotUsable(snap *schemas.CombatSnapshot) bool {
	if snap == nil {
		return false
	}
	for _, c := range []schemas.CombatantState{snap.Ally, snap.Opponent} {
		if c.MaxHP <= 0 || c.HP < 0 || c.HP > c.MaxHP {
			return false
		}
		for _, ms := range c.Moves {
			if ms.PP < 0 {
				return false
			}
		}
	}
	return true
}
