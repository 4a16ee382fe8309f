package parameter

// Collision testing
const (
	// CollisionAreaSize is the edge of a collision bucket
	CollisionAreaSize = 20

	// CollisionAreaMinPixels is the minimum overlap for a bucket to count
	CollisionAreaMinPixels = 3

	// CollisionAreaDamageHP is the damage of a full-strength bucket
	CollisionAreaDamageHP = 30

	// CollisionCoinMinPixels is the overlap above which a coin counts as collected
	CollisionCoinMinPixels = 3

	// CollisionOpaqueAlpha is the alpha at which an overlap pixel counts
	CollisionOpaqueAlpha = 200
)

// Explosions
const (
	ExplosionSprites       = 8
	ExplosionFrameDuration = 2 // ticks
	ExplosionSize          = 120
	ExplosionMinScale      = 0.4
)
