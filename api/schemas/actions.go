package schemas

import "fmt"

// ActionKind enumerates the closed set of battle actions the decision engine
// can emit. Consumers are expected to handle every case.
type ActionKind int

const (
	// ActionWait advances frames without input, the safe default when the
	// snapshot is unusable.
	ActionWait ActionKind = iota
	// ActionUseMove selects the move at Slot from the fight menu.
	ActionUseMove
	// ActionUseItem opens the bag and uses Item.
	ActionUseItem
	// ActionFlee attempts to run from a wild encounter.
	ActionFlee
	// ActionStruggle is the forced fallback when every slot is out of PP.
	// Distinct from ActionUseMove so it can never reference a depleted slot.
	ActionStruggle
)

func (k ActionKind) String() string {
	switch k {
	case ActionWait:
		return "wait"
	case ActionUseMove:
		return "fight"
	case ActionUseItem:
		return "item"
	case ActionFlee:
		return "flee"
	case ActionStruggle:
		return "struggle"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is a tagged variant: Kind selects which payload field is meaningful.
type Action struct {
	Kind ActionKind
	// Slot is the move slot index (0-3), valid for ActionUseMove.
	Slot int
	// Item is valid for ActionUseItem.
	Item ItemID
}

// UseMove returns a fight action for the given slot.
func UseMove(slot int) Action { return Action{Kind: ActionUseMove, Slot: slot} }

// UseItem returns an item action.
func UseItem(item ItemID) Action { return Action{Kind: ActionUseItem, Item: item} }

// Flee returns a run-away action.
func Flee() Action { return Action{Kind: ActionFlee} }

// Wait returns the do-nothing action.
func Wait() Action { return Action{Kind: ActionWait} }

// Struggle returns the out-of-PP fallback action.
func Struggle() Action { return Action{Kind: ActionStruggle} }

func (a Action) String() string {
	switch a.Kind {
	case ActionUseMove:
		return fmt.Sprintf("fight(slot=%d)", a.Slot)
	case ActionUseItem:
		return fmt.Sprintf("item(%s)", a.Item)
	default:
		return a.Kind.String()
	}
}

// StepState classifies the outcome of one RunNextStep invocation.
type StepState int

const (
	StepProgressed StepState = iota
	StepBlocked
	StepMilestoneComplete
)

func (s StepState) String() string {
	switch s {
	case StepProgressed:
		return "progressed"
	case StepBlocked:
		return "blocked"
	case StepMilestoneComplete:
		return "milestone_complete"
	default:
		return fmt.Sprintf("StepState(%d)", int(s))
	}
}

// StepResult reports what a single progression invocation achieved. On
// StepBlocked the sub-goal id and failure count tell the caller whether to
// retry, escalate, or abort.
type StepResult struct {
	State    StepState
	Step     string
	SubGoal  string
	Failures int
}
