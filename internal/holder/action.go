package holder

// ActionState describes the touch-interaction phase a row is in. Hosts report
// transitions through ActionStateChanged; the values match the usual
// idle/swipe/drag vocabulary of list gestures.
type ActionState int

const (
	ActionStateIdle  ActionState = 0
	ActionStateSwipe ActionState = 1
	ActionStateDrag  ActionState = 2
)

func (s ActionState) String() string {
	switch s {
	case ActionStateIdle:
		return "idle"
	case ActionStateSwipe:
		return "swipe"
	case ActionStateDrag:
		return "drag"
	default:
		return "unknown"
	}
}
