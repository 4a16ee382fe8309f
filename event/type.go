package event

// EventType identifies a game event
type EventType int

const (
	// EventExplosion reports one collision area between the craft and a barrier
	// Trigger: Walls barrier test, Walls.ExplodeShip
	// Consumer: Game (damage, visual explosion), SoundManager | Payload: *ExplosionPayload
	EventExplosion EventType = iota

	// EventFinish signals the craft reached the finish line
	// Trigger: Walls when the finish segment crosses the ship plane
	// Consumer: Game (finishing transition), SoundManager | Payload: nil
	EventFinish

	// EventCoinCollected signals the craft picked up the coins of a segment
	// Trigger: Walls coin test | Consumer: SoundManager, metrics | Payload: nil
	EventCoinCollected

	// EventSaveScore requests the score submission screen
	// Trigger: Game, finish delay elapsed
	// Consumer: front end | Payload: *SaveScorePayload
	EventSaveScore

	// EventClose requests a return to the menu
	// Trigger: Game, game over delay elapsed
	// Consumer: front end | Payload: nil
	EventClose
)

var typeNames = map[EventType]string{
	EventExplosion:     "Explosion",
	EventFinish:        "Finish",
	EventCoinCollected: "CoinCollected",
	EventSaveScore:     "SaveScore",
	EventClose:         "Close",
}

// String returns the event name for logs
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is one notification
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // tick at emission
}
