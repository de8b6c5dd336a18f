package battle

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// The battle menu is a 2x2 grid, indexed row-major by the game's cursor byte:
//
//	FIGHT(0)  PKMN(1)
//	ITEM(2)   RUN(3)
//
// menuEntry positions are modeled explicitly so navigation is a computed
// cursor walk rather than a replayed button script that assumes state.
type menuEntry struct{ col, row int }

var (
	menuFight = menuEntry{0, 0}
	menuItem  = menuEntry{0, 1}
	menuRun   = menuEntry{1, 1}
)

// cursorEntry maps the raw cursor index to its grid position. Out-of-range
// reads fall back to FIGHT, where the cursor rests on a fresh battle.
func cursorEntry(i int) menuEntry {
	if i < 0 || i > 3 {
		return menuFight
	}
	return menuEntry{col: i % 2, row: i / 2}
}

// pathTo returns the button presses to move the cursor from e to target.
func (e menuEntry) pathTo(target menuEntry) []schemas.Button {
	var path []schemas.Button
	for c := e.col; c < target.col; c++ {
		path = append(path, schemas.ButtonRight)
	}
	for c := e.col; c > target.col; c-- {
		path = append(path, schemas.ButtonLeft)
	}
	for r := e.row; r < target.row; r++ {
		path = append(path, schemas.ButtonDown)
	}
	for r := e.row; r > target.row; r-- {
		path = append(path, schemas.ButtonUp)
	}
	return path
}

// Execute translates the decided action into button input and waits out the
// resulting animation. Every sequence starts from the root-menu cursor
// position Decide captured off the snapshot, not an assumed resting spot.
func (e *Engine) Execute(ctx context.Context, action schemas.Action) error {
	e.phase = PhaseExecuting
	e.logger.Debug("executing action", zap.Stringer("action", action))

	var err error
	switch action.Kind {
	case schemas.ActionUseMove:
		err = e.executeFight(ctx, action.Slot)
	case schemas.ActionStruggle:
		// Out of PP the game forces Struggle; confirming FIGHT is enough.
		err = e.executeFight(ctx, 0)
	case schemas.ActionUseItem:
		err = e.executeItem(ctx)
	case schemas.ActionFlee:
		err = e.executeFlee(ctx)
	case schemas.ActionWait:
		err = e.input.Advance(ctx, e.cfg.AnimationFrames)
	default:
		return fmt.Errorf("battle: unhandled action kind %v", action.Kind)
	}
	if err != nil {
		return fmt.Errorf("battle: execute %v: %w", action, err)
	}
	e.phase = PhaseAwaitingResolution
	return nil
}

// executeFight walks the cursor to FIGHT, confirms, walks the vertical move
// list down to the slot, and confirms. The move-list cursor starts at slot 0.
func (e *Engine) executeFight(ctx context.Context, slot int) error {
	if err := e.walkRoot(ctx, menuFight); err != nil {
		return err
	}
	if err := e.input.Press(ctx, schemas.ButtonA, e.cfg.ConfirmFrames); err != nil {
		return err
	}
	for i := 0; i < slot; i++ {
		if err := e.input.Press(ctx, schemas.ButtonDown, e.cfg.MenuFrames); err != nil {
			return err
		}
	}
	// Longer settle for the attack animation to start.
	return e.input.Press(ctx, schemas.ButtonA, e.cfg.AnimationFrames)
}

// executeItem opens the bag from the root menu and uses the first
// highlighted healing item.
func (e *Engine) executeItem(ctx context.Context) error {
	if err := e.walkRoot(ctx, menuItem); err != nil {
		return err
	}
	if err := e.input.Press(ctx, schemas.ButtonA, e.cfg.ConfirmFrames); err != nil {
		return err
	}
	return e.input.Press(ctx, schemas.ButtonA, e.cfg.ConfirmFrames)
}

// executeFlee walks the cursor to RUN and confirms.
func (e *Engine) executeFlee(ctx context.Context) error {
	if err := e.walkRoot(ctx, menuRun); err != nil {
		return err
	}
	return e.input.Press(ctx, schemas.ButtonA, e.cfg.AnimationFrames)
}

func (e *Engine) walkRoot(ctx context.Context, target menuEntry) error {
	for _, b := range cursorEntry(e.menuCursor).pathTo(target) {
		if err := e.input.Press(ctx, b, e.cfg.MenuFrames); err != nil {
			return err
		}
	}
	return nil
}
