package event

// ExplosionPayload locates one collision area
type ExplosionPayload struct {
	X, Y     int
	Strength float64 // overlap density in [0,1]

	// Damages is false for the cosmetic explosions of an already destroyed craft
	Damages bool
}

// SaveScorePayload carries the final coin count
type SaveScorePayload struct {
	Score int
}
