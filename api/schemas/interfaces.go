package schemas

import "context"

// Button identifies one controller input.
type Button string

const (
	ButtonUp     Button = "up"
	ButtonDown   Button = "down"
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonA      Button = "a"
	ButtonB      Button = "b"
	ButtonStart  Button = "start"
	ButtonSelect Button = "select"
)

// StateReader assembles a fresh snapshot from emulated memory. Called exactly
// once at the top of each orchestrator iteration; the snapshot is used
// consistently for that iteration's single decision.
type StateReader interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// InputController is the only way the core causes observable game-world
// change. Both calls are intent, not guaranteed effect: a press may be a
// no-op if the player is blocked.
type InputController interface {
	// Press holds the button for holdFrames emulated frames, then releases.
	Press(ctx context.Context, b Button, holdFrames int) error
	// Advance steps emulated time without input.
	Advance(ctx context.Context, frames int) error
}

// Persistence stores the progression record. Save is atomic at the
// granularity of one sub-goal boundary. Load returns (nil, nil) when no
// record exists yet and ErrCorruptRecord when one exists but fails to parse.
type Persistence interface {
	Load() (*ProgressionRecord, error)
	Save(*ProgressionRecord) error
}
