package progression

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
	"github.com/wrenhollow/bluebot/internal/gamedata"
	"github.com/wrenhollow/bluebot/internal/navigation"
)

// Overworld is the slice of the navigator the machine drives. Satisfied by
// *navigation.Navigator.
type Overworld interface {
	NavigateTo(ctx context.Context, x, y int) (bool, error)
	EnterDoor(ctx context.Context, doorX, doorY int) error
	ExitArea(ctx context.Context) error
	CrossArea(ctx context.Context, dir navigation.Direction, maxSteps int) error
	Interact(ctx context.Context) error
	MashDialog(ctx context.Context, maxAttempts int) (int, error)
}

// Config tunes recovery behavior.
type Config struct {
	// HealDialogPresses is the dialog budget for a Pokemon Center visit.
	HealDialogPresses int
	// MaxSubGoalFailures aborts a run when one sub-goal keeps failing.
	MaxSubGoalFailures int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		HealDialogPresses:  60,
		MaxSubGoalFailures: 10,
	}
}

// Machine walks the campaign script one sub-goal at a time. The persisted
// record is written only at sub-goal boundaries, so a crash never loses more
// than the sub-goal in flight.
type Machine struct {
	cfg    Config
	nav    Overworld
	store  schemas.Persistence
	logger *zap.Logger
	record *schemas.ProgressionRecord
	pinned bool
}

// New loads the saved record and returns a machine positioned at it. A
// missing record starts from the beginning; a corrupt one is discarded with
// a warning, and the next SyncBadges call fast-forwards to the earliest
// milestone consistent with the cartridge.
func New(cfg Config, nav Overworld, store schemas.Persistence, logger *zap.Logger) (*Machine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("progression")

	record, err := store.Load()
	switch {
	case errors.Is(err, schemas.ErrCorruptRecord):
		logger.Warn("progression record corrupt, starting over", zap.Error(err))
		record = nil
	case err != nil:
		return nil, fmt.Errorf("progression: loading record: %w", err)
	}
	if record == nil {
		record = schemas.NewProgressionRecord(script[0].Name)
	} else if milestoneIndex(record.CurrentStep) < 0 {
		logger.Warn("saved step unknown, starting over", zap.String("step", record.CurrentStep))
		record = schemas.NewProgressionRecord(script[0].Name)
	} else {
		logger.Info("resuming saved progression", zap.String("step", record.CurrentStep))
	}

	return &Machine{cfg: cfg, nav: nav, store: store, logger: logger, record: record}, nil
}

// Record returns a copy of the current persisted state.
func (m *Machine) Record() *schemas.ProgressionRecord { return m.record.Clone() }

// SetStep repositions the machine at the named milestone and pins it there,
// discarding saved progress. Badge reconciliation never fast-forwards a
// pinned machine, so the milestone runs in isolation even on a cartridge
// already past it.
func (m *Machine) SetStep(name string) error {
	if milestoneIndex(name) < 0 {
		return fmt.Errorf("progression: unknown milestone %q", name)
	}
	m.record = schemas.NewProgressionRecord(name)
	m.pinned = true
	m.logger.Info("milestone override", zap.String("step", name))
	return m.persist()
}

// CurrentStep returns the milestone to execute next. The badge bitfield is
// authoritative: the saved step is only trusted when it is at or past the
// earliest milestone the badge count implies, so a stale or rolled-back
// record can never send the bot backwards through beaten gyms.
func (m *Machine) CurrentStep(badges schemas.Badges) string {
	expected := expectedIndex(badges.Count())
	saved := milestoneIndex(m.record.CurrentStep)
	if saved < expected {
		return script[expected].Name
	}
	return m.record.CurrentStep
}

// expectedIndex returns the earliest milestone index consistent with the
// badge count. Zero badges trusts the saved step, since the pre-Boulder
// stretch has no observable checkpoint.
func expectedIndex(badgeCount int) int {
	if badgeCount <= 0 {
		return 0
	}
	for i, m := range script {
		if m.MinBadges >= badgeCount {
			return i
		}
	}
	return len(script) - 1
}

// SyncBadges reconciles the saved record with the cartridge badge count,
// advancing and persisting when the record is behind.
func (m *Machine) SyncBadges(badges schemas.Badges) error {
	if m.pinned {
		if uint8(badges) == m.record.Badges {
			return nil
		}
		m.record.Badges = uint8(badges)
		return m.persist()
	}
	step := m.CurrentStep(badges)
	if step == m.record.CurrentStep && uint8(badges) == m.record.Badges {
		return nil
	}
	if step != m.record.CurrentStep {
		m.logger.Warn("record behind cartridge, fast-forwarding",
			zap.String("saved", m.record.CurrentStep),
			zap.String("step", step),
			zap.Int("badges", badges.Count()))
		m.record.CurrentStep = step
	}
	m.record.Badges = uint8(badges)
	return m.persist()
}

// Done reports whether the campaign has reached its terminal milestone.
func (m *Machine) Done() bool { return m.record.CurrentStep == FinalMilestone }

// RunNextStep executes exactly one pending sub-goal of the current
// milestone. Completion is persisted before returning. A battle starting
// mid-goal surfaces as ErrCombatInterrupt with nothing marked done, so the
// same sub-goal is retried after the battle resolves. Recoverable navigation
// failures return StepBlocked with the failure count for the caller to judge.
func (m *Machine) RunNextStep(ctx context.Context, snap *schemas.Snapshot) (*schemas.StepResult, error) {
	if err := m.SyncBadges(snap.Badges); err != nil {
		return nil, err
	}

	step := m.record.CurrentStep
	idx := milestoneIndex(step)
	milestone := script[idx]

	goal, ok := m.nextGoal(milestone)
	if !ok {
		return m.completeMilestone(idx)
	}

	gid := step + "/" + goal.id
	m.logger.Info("running sub-goal", zap.String("goal", gid))

	if err := m.runGoal(ctx, goal, snap); err != nil {
		if errors.Is(err, schemas.ErrCombatInterrupt) {
			m.logger.Info("sub-goal interrupted by battle", zap.String("goal", gid))
			return nil, err
		}
		if recoverable(err) {
			failures := m.record.BumpAttempt(gid)
			m.logger.Warn("sub-goal blocked",
				zap.String("goal", gid), zap.Int("failures", failures), zap.Error(err))
			if perr := m.persist(); perr != nil {
				return nil, perr
			}
			if failures >= m.cfg.MaxSubGoalFailures {
				return nil, fmt.Errorf("progression: sub-goal %s failed %d times: %w", gid, failures, err)
			}
			return &schemas.StepResult{
				State: schemas.StepBlocked, Step: step, SubGoal: goal.id, Failures: failures,
			}, nil
		}
		return nil, fmt.Errorf("progression: sub-goal %s: %w", gid, err)
	}

	m.record.MarkSubGoalDone(gid)
	if err := m.persist(); err != nil {
		return nil, err
	}
	if _, more := m.nextGoal(milestone); !more {
		return m.completeMilestone(idx)
	}
	return &schemas.StepResult{State: schemas.StepProgressed, Step: step, SubGoal: goal.id}, nil
}

// recoverable reports whether a sub-goal failure is worth retrying rather
// than aborting the run.
func recoverable(err error) bool {
	return errors.Is(err, schemas.ErrStuckNavigation) ||
		errors.Is(err, schemas.ErrNavigationBudget) ||
		errors.Is(err, schemas.ErrDialogStuck)
}

func (m *Machine) nextGoal(milestone Milestone) (subGoal, bool) {
	for _, g := range milestone.SubGoals {
		if !m.record.SubGoalDone(milestone.Name + "/" + g.id) {
			return g, true
		}
	}
	return subGoal{}, false
}

func (m *Machine) completeMilestone(idx int) (*schemas.StepResult, error) {
	name := script[idx].Name
	if idx+1 < len(script) {
		m.record.CurrentStep = script[idx+1].Name
	}
	m.logger.Info("milestone complete",
		zap.String("milestone", name), zap.String("next", m.record.CurrentStep))
	if err := m.persist(); err != nil {
		return nil, err
	}
	return &schemas.StepResult{State: schemas.StepMilestoneComplete, Step: name}, nil
}

func (m *Machine) runGoal(ctx context.Context, goal subGoal, snap *schemas.Snapshot) error {
	switch goal.kind {
	case goalNavigate:
		passes := goal.repeat
		if passes < 1 {
			passes = 1
		}
		for i := 0; i < passes; i++ {
			reached, err := m.nav.NavigateTo(ctx, goal.x, goal.y)
			if err != nil {
				return err
			}
			if !reached {
				return schemas.ErrNavigationBudget
			}
		}
		return nil
	case goalEnterDoor:
		return m.nav.EnterDoor(ctx, goal.x, goal.y)
	case goalExitArea:
		return m.nav.ExitArea(ctx)
	case goalTalk:
		reached, err := m.nav.NavigateTo(ctx, goal.x, goal.y)
		if err != nil {
			return err
		}
		if !reached {
			return schemas.ErrNavigationBudget
		}
		if err := m.nav.Interact(ctx); err != nil {
			return err
		}
		_, err = m.nav.MashDialog(ctx, goal.presses)
		return err
	case goalInteractMash:
		if err := m.nav.Interact(ctx); err != nil {
			return err
		}
		_, err := m.nav.MashDialog(ctx, goal.presses)
		return err
	case goalMash:
		_, err := m.nav.MashDialog(ctx, goal.presses)
		return err
	case goalCross:
		return m.nav.CrossArea(ctx, goal.dir, goal.budget)
	case goalHeal:
		return m.VisitPokecenter(ctx, snap.Area)
	default:
		return fmt.Errorf("progression: unknown goal kind %d", goal.kind)
	}
}

// VisitPokecenter enters the center for the given city, walks to the
// counter, and mashes through the healing dialog. Also used by the
// orchestrator for low-health detours outside scripted milestones.
func (m *Machine) VisitPokecenter(ctx context.Context, area schemas.AreaID) error {
	door, ok := gamedata.PokecenterDoor(area)
	if !ok {
		return fmt.Errorf("progression: no pokecenter known for %s: %w",
			gamedata.AreaName(area), schemas.ErrStuckNavigation)
	}
	m.logger.Info("visiting pokecenter",
		zap.String("city", gamedata.AreaName(area)), zap.String("center", door.Label))
	if err := m.nav.EnterDoor(ctx, door.X, door.Y); err != nil {
		return err
	}
	counter := gamedata.PokecenterCounter
	reached, err := m.nav.NavigateTo(ctx, counter.X, counter.Y-1)
	if err != nil {
		return err
	}
	if !reached {
		return schemas.ErrNavigationBudget
	}
	if err := m.nav.Interact(ctx); err != nil {
		return err
	}
	if _, err := m.nav.MashDialog(ctx, m.cfg.HealDialogPresses); err != nil {
		return err
	}
	return nil
}

func (m *Machine) persist() error {
	if err := m.store.Save(m.record); err != nil {
		return fmt.Errorf("progression: saving record: %w", err)
	}
	return nil
}
