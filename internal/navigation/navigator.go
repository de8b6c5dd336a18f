// Package navigation implements overworld movement: greedy stepping toward a
// target, blocked-step and stuck detection with a perpendicular escape
// maneuver, bounded dialog mashing, and door entry.
package navigation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// Direction is one of the four overworld movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Button returns the controller input for the direction.
func (d Direction) Button() schemas.Button {
	switch d {
	case Up:
		return schemas.ButtonUp
	case Down:
		return schemas.ButtonDown
	case Left:
		return schemas.ButtonLeft
	default:
		return schemas.ButtonRight
	}
}

// Perpendiculars returns the two directions orthogonal to d, used by the
// stuck-escape maneuver.
func (d Direction) Perpendiculars() (Direction, Direction) {
	if d == Up || d == Down {
		return Left, Right
	}
	return Up, Down
}

// Config bounds every retry loop in the navigator. Nothing here loops
// unbounded.
type Config struct {
	// FramesPerStep is the hold needed for one full walk-tile animation.
	FramesPerStep int
	// DialogFrames is the settle delay between confirm presses.
	DialogFrames int
	// InteractFrames is the hold for a single interaction press.
	InteractFrames int
	// TransitionFrames is the hold that carries the player through a door.
	TransitionFrames int
	// StuckThreshold is the number of consecutive no-progress attempts
	// before the escape maneuver triggers.
	StuckThreshold int
	// EscapeSteps is the fixed length of one perpendicular detour.
	EscapeSteps int
	// MaxEscapeAttempts caps escapes per NavigateTo call so two facing
	// walls cannot oscillate forever.
	MaxEscapeAttempts int
	// MaxSteps is the overall attempt budget for one NavigateTo call.
	MaxSteps int
	// ExitSteps bounds the walk-south-until-the-area-changes exit routine.
	ExitSteps int
}

// DefaultConfig mirrors the tuned constants of the reference bot.
func DefaultConfig() Config {
	return Config{
		FramesPerStep:     16,
		DialogFrames:      30,
		InteractFrames:    10,
		TransitionFrames:  32,
		StuckThreshold:    5,
		EscapeSteps:       3,
		MaxEscapeAttempts: 3,
		MaxSteps:          2000,
		ExitSteps:         30,
	}
}

// Navigator drives the player around one area. Targets in a different area
// are the caller's sequencing problem (enter/exit first).
type Navigator struct {
	cfg    Config
	reader schemas.StateReader
	input  schemas.InputController
	logger *zap.Logger
}

// New returns a Navigator over the given collaborators.
func New(cfg Config, reader schemas.StateReader, input schemas.InputController, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{cfg: cfg, reader: reader, input: input, logger: logger.Named("nav")}
}

// position re-reads the live player coordinates.
func (n *Navigator) position(ctx context.Context) (*schemas.Snapshot, error) {
	snap, err := n.reader.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("nav: reading position: %w", err)
	}
	return snap, nil
}

// MoveOneStep presses the direction for one walk animation and reports
// whether the position actually changed. A false return with nil error is a
// blocked step, not a failure.
func (n *Navigator) MoveOneStep(ctx context.Context, dir Direction) (bool, error) {
	before, err := n.position(ctx)
	if err != nil {
		return false, err
	}
	if err := n.input.Press(ctx, dir.Button(), n.cfg.FramesPerStep); err != nil {
		return false, fmt.Errorf("nav: step %s: %w", dir, err)
	}
	after, err := n.position(ctx)
	if err != nil {
		return false, err
	}
	moved := after.X != before.X || after.Y != before.Y
	if !moved {
		n.logger.Debug("step blocked",
			zap.Stringer("dir", dir), zap.Int("x", before.X), zap.Int("y", before.Y))
	}
	return moved, nil
}

// NavigateTo walks greedily toward (targetX, targetY) within the current
// area. Each iteration steps along the axis with the larger remaining delta;
// after StuckThreshold consecutive no-progress attempts it runs one
// perpendicular escape maneuver, then resumes. Returns reached=false with
// ErrNavigationBudget when the step budget runs out, and ErrCombatInterrupt
// if a battle starts mid-walk.
func (n *Navigator) NavigateTo(ctx context.Context, targetX, targetY int) (bool, error) {
	snap, err := n.position(ctx)
	if err != nil {
		return false, err
	}
	if snap.X == targetX && snap.Y == targetY {
		return true, nil // already there, no input issued
	}

	n.logger.Info("navigating",
		zap.Int("target_x", targetX), zap.Int("target_y", targetY),
		zap.Int("from_x", snap.X), zap.Int("from_y", snap.Y))

	stuck := 0
	escapes := 0
	lastX, lastY := snap.X, snap.Y

	for step := 0; step < n.cfg.MaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		snap, err = n.position(ctx)
		if err != nil {
			return false, err
		}
		if snap.InBattle() {
			return false, schemas.ErrCombatInterrupt
		}
		if snap.X == targetX && snap.Y == targetY {
			n.logger.Info("target reached", zap.Int("steps", step))
			return true, nil
		}

		dx := targetX - snap.X
		dy := targetY - snap.Y
		primary, secondary := pickAxes(dx, dy)

		moved, err := n.MoveOneStep(ctx, primary)
		if err != nil {
			return false, err
		}
		if !moved && dx != 0 && dy != 0 {
			if moved, err = n.MoveOneStep(ctx, secondary); err != nil {
				return false, err
			}
		}

		after, err := n.position(ctx)
		if err != nil {
			return false, err
		}
		if after.X == lastX && after.Y == lastY {
			stuck++
			if stuck >= n.cfg.StuckThreshold {
				escapes++
				if escapes > n.cfg.MaxEscapeAttempts {
					return false, schemas.ErrStuckNavigation
				}
				n.logger.Warn("stuck, attempting perpendicular escape",
					zap.Int("x", after.X), zap.Int("y", after.Y), zap.Int("attempt", escapes))
				escaped, err := n.escape(ctx, primary)
				if err != nil {
					return false, err
				}
				stuck = 0
				if !escaped {
					return false, schemas.ErrStuckNavigation
				}
			}
		} else {
			stuck = 0
			lastX, lastY = after.X, after.Y
		}
	}

	n.logger.Warn("step budget exhausted",
		zap.Int("budget", n.cfg.MaxSteps), zap.Int("target_x", targetX), zap.Int("target_y", targetY))
	return false, schemas.ErrNavigationBudget
}

// pickAxes orders movement axes by remaining delta, larger first.
func pickAxes(dx, dy int) (primary, secondary Direction) {
	horiz := Right
	if dx < 0 {
		horiz = Left
	}
	vert := Down
	if dy < 0 {
		vert = Up
	}
	if abs(dx) >= abs(dy) {
		return horiz, vert
	}
	return vert, horiz
}

// escape walks a short fixed-length detour perpendicular to the blocked
// axis, trying both sides. Reports whether any step landed.
func (n *Navigator) escape(ctx context.Context, blocked Direction) (bool, error) {
	first, second := blocked.Perpendiculars()
	for _, perp := range []Direction{first, second} {
		for i := 0; i < n.cfg.EscapeSteps; i++ {
			moved, err := n.MoveOneStep(ctx, perp)
			if err != nil {
				return false, err
			}
			if moved {
				return true, nil
			}
		}
	}
	return false, nil
}

// Interact presses A at the player's current facing.
func (n *Navigator) Interact(ctx context.Context) error {
	return n.input.Press(ctx, schemas.ButtonA, n.cfg.InteractFrames)
}

// MashDialog presses the confirm input with a settle delay until the dialog
// flag clears or maxAttempts is exhausted. Returns the press count; an
// exhausted budget is reported as ErrDialogStuck, never swallowed.
func (n *Navigator) MashDialog(ctx context.Context, maxAttempts int) (int, error) {
	presses := 0
	for i := 0; i < maxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return presses, err
		}
		snap, err := n.position(ctx)
		if err != nil {
			return presses, err
		}
		if !snap.DialogOpen {
			return presses, nil
		}
		if err := n.input.Press(ctx, schemas.ButtonA, n.cfg.DialogFrames); err != nil {
			return presses, err
		}
		presses++
	}
	snap, err := n.position(ctx)
	if err != nil {
		return presses, err
	}
	if snap.DialogOpen {
		return presses, schemas.ErrDialogStuck
	}
	return presses, nil
}

// EnterDoor walks to the tile one step south of the door and presses Up,
// holding long enough for the map transition.
func (n *Navigator) EnterDoor(ctx context.Context, doorX, doorY int) error {
	reached, err := n.NavigateTo(ctx, doorX, doorY+1)
	if err != nil {
		return err
	}
	if !reached {
		return fmt.Errorf("nav: door approach (%d,%d): %w", doorX, doorY, schemas.ErrNavigationBudget)
	}
	return n.input.Press(ctx, schemas.ButtonUp, n.cfg.TransitionFrames)
}

// CrossArea walks in one direction until the area id changes, for corridors
// like Route 1 or Viridian Forest where the far edge is the goal. Bounded by
// maxSteps; a battle starting mid-walk surfaces as ErrCombatInterrupt.
func (n *Navigator) CrossArea(ctx context.Context, dir Direction, maxSteps int) error {
	start, err := n.position(ctx)
	if err != nil {
		return err
	}
	for i := 0; i < maxSteps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := n.MoveOneStep(ctx, dir); err != nil {
			return err
		}
		snap, err := n.position(ctx)
		if err != nil {
			return err
		}
		if snap.InBattle() {
			return schemas.ErrCombatInterrupt
		}
		if snap.Area != start.Area {
			n.logger.Info("area crossed",
				zap.Stringer("dir", dir), zap.Uint8("from", uint8(start.Area)), zap.Uint8("to", uint8(snap.Area)))
			return nil
		}
	}
	return fmt.Errorf("nav: area did not change after %d %s steps: %w",
		maxSteps, dir, schemas.ErrStuckNavigation)
}

// ExitArea walks south until the area id changes. Most interiors exit from
// their bottom row.
func (n *Navigator) ExitArea(ctx context.Context) error {
	return n.CrossArea(ctx, Down, n.cfg.ExitSteps)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
