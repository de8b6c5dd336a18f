package schemas

import "errors"

// Error taxonomy shared by the decision core. Only ErrCollaboratorUnavailable
// is fatal for a run; everything else is recovered locally with bounded
// retries and a reported outcome.
var (
	// ErrCombatInterrupt: a battle started while a sub-goal was in flight.
	// The sub-goal is suspended, not abandoned.
	ErrCombatInterrupt = errors.New("combat interrupted the current goal")

	// ErrStuckNavigation: position did not change across the stuck threshold
	// and the escape maneuver also failed.
	ErrStuckNavigation = errors.New("navigation stuck, escape failed")

	// ErrNavigationBudget: the overall step budget ran out before the target
	// was reached.
	ErrNavigationBudget = errors.New("navigation step budget exhausted")

	// ErrDialogStuck: the dialog flag did not clear within the press budget.
	ErrDialogStuck = errors.New("dialog did not clear within press budget")

	// ErrCorruptRecord: the persisted progression record failed to parse.
	ErrCorruptRecord = errors.New("progression record is corrupt")

	// ErrCollaboratorUnavailable: the emulator/IO collaborator is
	// unreachable. Fatal for the current run.
	ErrCollaboratorUnavailable = errors.New("emulator collaborator unavailable")
)
