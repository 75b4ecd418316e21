package sim

// EventKind names something that happened during a tick.
type EventKind string

const (
	EventSpawned   EventKind = "spawned"
	EventRemoved   EventKind = "removed"
	EventCollected EventKind = "collected"
	EventLanded    EventKind = "landed"
	EventJumped    EventKind = "jumped"
	EventScrolled  EventKind = "scrolled"
	EventHighScore EventKind = "high_score"
	EventGameOver  EventKind = "game_over"
)

// Removal reasons reported in Event.Reason.
const (
	RemovedBroken    = "broken"    // Breakable platform landed on
	RemovedRecycled  = "recycled"  // Platform fell below the viewport
	RemovedCollected = "collected" // Pickup taken
	RemovedTriggered = "triggered" // Trap touched
	RemovedExpired   = "expired"   // Black hole fell below the viewport
)

// Event is one notification for renderers and hosts. Which fields are set
// depends on Kind:
//   - spawned/removed: Entity, ID (removed also Reason)
//   - collected: Entity, ID, Points, Value (resulting VY for bonuses)
//   - landed: ID, Platform, Value (resulting VY)
//   - jumped: Value (resulting VY)
//   - scrolled: Value (delta), Points
//   - high_score: Points (new high score)
//   - game_over: Reason
type Event struct {
	Kind     EventKind
	Entity   Kind
	ID       EntityID
	Platform PlatformType
	Reason   string
	Value    float64
	Points   int
}
