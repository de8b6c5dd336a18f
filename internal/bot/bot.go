// Package bot runs the main decision loop. Each iteration reads one
// snapshot and makes exactly one decision from it, in strict priority
// order: an active battle preempts everything, a hurt party preempts
// progression, and progression otherwise advances one sub-goal.
package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// Combatant is the slice of the battle engine the loop drives.
type Combatant interface {
	Decide(snap *schemas.CombatSnapshot) schemas.Action
	Execute(ctx context.Context, action schemas.Action) error
	TurnResolved()
	EndBattle()
}

// Progressor is the slice of the progression machine the loop drives.
type Progressor interface {
	RunNextStep(ctx context.Context, snap *schemas.Snapshot) (*schemas.StepResult, error)
	VisitPokecenter(ctx context.Context, area schemas.AreaID) error
	Done() bool
}

// Config tunes the loop.
type Config struct {
	// MaxIterations bounds the loop; 0 runs until the campaign completes.
	MaxIterations int
	// StatusEvery throttles the periodic status log line, in iterations
	// per second of wall time.
	StatusEvery float64
	// ReadFailureLimit aborts after this many consecutive snapshot
	// failures.
	ReadFailureLimit int
	// WhiteoutFrames is how much emulated time to advance per iteration
	// while a fainted party warps back to its last center.
	WhiteoutFrames int
	// WhiteoutWaitLimit aborts after this many consecutive whiteout waits.
	WhiteoutWaitLimit int
	// StopAfter ends the run once the named milestone completes. Empty
	// runs the whole campaign.
	StopAfter string
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		StatusEvery:       0.2,
		ReadFailureLimit:  5,
		WhiteoutFrames:    60,
		WhiteoutWaitLimit: 20,
	}
}

// Bot wires the reader, battle engine, and progression machine into one
// single-threaded loop.
type Bot struct {
	cfg     Config
	reader  schemas.StateReader
	input   schemas.InputController
	combat  Combatant
	machine Progressor
	logger  *zap.Logger

	status *rate.Limiter
}

// New returns a Bot over the given collaborators.
func New(cfg Config, reader schemas.StateReader, input schemas.InputController, combat Combatant, machine Progressor, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	statusEvery := cfg.StatusEvery
	if statusEvery <= 0 {
		statusEvery = 0.2
	}
	if cfg.WhiteoutFrames <= 0 {
		cfg.WhiteoutFrames = 60
	}
	if cfg.WhiteoutWaitLimit <= 0 {
		cfg.WhiteoutWaitLimit = 20
	}
	return &Bot{
		cfg:     cfg,
		reader:  reader,
		input:   input,
		combat:  combat,
		machine: machine,
		logger:  logger.Named("bot"),
		status:  rate.NewLimiter(rate.Limit(statusEvery), 1),
	}
}

// Run executes the loop until the campaign completes, the iteration budget
// runs out, or the context is cancelled. The returned error is nil on a
// completed campaign or exhausted budget.
func (b *Bot) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := b.logger.With(zap.String("run_id", runID))
	logger.Info("run starting", zap.Int("max_iterations", b.cfg.MaxIterations))

	inBattle := false
	readFailures := 0
	whiteoutWaits := 0

	for iteration := 0; b.cfg.MaxIterations == 0 || iteration < b.cfg.MaxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap, err := b.reader.Snapshot(ctx)
		if err != nil {
			readFailures++
			logger.Warn("snapshot failed",
				zap.Int("consecutive", readFailures), zap.Error(err))
			if readFailures >= b.cfg.ReadFailureLimit {
				return fmt.Errorf("bot: %d consecutive snapshot failures: %w", readFailures, err)
			}
			continue
		}
		readFailures = 0

		if b.status.Allow() {
			logger.Info("status",
				zap.Int("iteration", iteration),
				zap.Uint8("area", uint8(snap.Area)),
				zap.Int("x", snap.X), zap.Int("y", snap.Y),
				zap.Int("badges", snap.Badges.Count()),
				zap.Bool("in_battle", snap.InBattle()))
		}

		if snap.InBattle() {
			inBattle = true
			if err := b.battleTurn(ctx, snap.Combat, logger); err != nil {
				return err
			}
			continue
		}
		if inBattle {
			inBattle = false
			b.combat.EndBattle()
			logger.Info("battle resolved")
			continue
		}

		if !snap.PartyHealthy {
			// Whiteout: the game warps the player back to the last
			// center on its own, but only if emulated time moves.
			whiteoutWaits++
			if whiteoutWaits > b.cfg.WhiteoutWaitLimit {
				return fmt.Errorf("bot: party still fainted after %d whiteout waits", b.cfg.WhiteoutWaitLimit)
			}
			logger.Warn("party fainted, advancing through the whiteout",
				zap.Int("consecutive", whiteoutWaits))
			if err := b.input.Advance(ctx, b.cfg.WhiteoutFrames); err != nil {
				return fmt.Errorf("bot: whiteout wait: %w", err)
			}
			continue
		}
		whiteoutWaits = 0

		if b.machine.Done() {
			logger.Info("campaign complete", zap.Int("iterations", iteration))
			return nil
		}

		if snap.NeedsHeal {
			if err := b.healDetour(ctx, snap, logger); err != nil {
				return err
			}
			continue
		}

		res, err := b.machine.RunNextStep(ctx, snap)
		if err != nil {
			if errors.Is(err, schemas.ErrCombatInterrupt) {
				logger.Info("progression interrupted by battle")
				continue
			}
			return fmt.Errorf("bot: progression: %w", err)
		}
		if res.State == schemas.StepMilestoneComplete {
			logger.Info("milestone complete", zap.String("milestone", res.Step))
			if b.cfg.StopAfter != "" && res.Step == b.cfg.StopAfter {
				logger.Info("stop-after milestone reached")
				return nil
			}
		}
	}

	logger.Info("iteration budget exhausted", zap.Int("budget", b.cfg.MaxIterations))
	return nil
}

func (b *Bot) battleTurn(ctx context.Context, combat *schemas.CombatSnapshot, logger *zap.Logger) error {
	action := b.combat.Decide(combat)
	logger.Debug("battle action", zap.Stringer("action", action))
	if err := b.combat.Execute(ctx, action); err != nil {
		return fmt.Errorf("bot: battle turn: %w", err)
	}
	b.combat.TurnResolved()
	return nil
}

func (b *Bot) healDetour(ctx context.Context, snap *schemas.Snapshot, logger *zap.Logger) error {
	logger.Info("party needs healing, detouring to pokecenter")
	err := b.machine.VisitPokecenter(ctx, snap.Area)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, schemas.ErrCombatInterrupt):
		logger.Info("heal detour interrupted by battle")
		return nil
	case errors.Is(err, schemas.ErrStuckNavigation), errors.Is(err, schemas.ErrNavigationBudget),
		errors.Is(err, schemas.ErrDialogStuck):
		// No center reachable from here; press on and retry from the
		// next area.
		logger.Warn("heal detour failed", zap.Error(err))
		return nil
	default:
		return fmt.Errorf("bot: heal detour: %w", err)
	}
}
