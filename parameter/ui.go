package parameter

// HUD top bar
const (
	HPBarWidth        = 100
	HPBarHeight       = 6
	HPBarSkew         = 4
	HPBarSegmentWidth = 4
	HPBarX            = 20.5
	HPBarY            = 10.5

	CoinsBarX      = 250
	CoinsBarY      = 10
	CoinsBarScoreX = 265
	CoinsBarScoreY = 6

	FinishBarX        = 150
	FinishBarY        = 9
	FinishBarPercentX = FinishBarX + 21
	FinishBarPercentY = 6
)

// Banner text animation
const (
	BannerGrowSteps     = 4
	BannerColorDuration = 3 // ticks
	GameOverColorTicks  = 12
	NicknameMaxLength   = 12
)

// Score table
const (
	ScoreTableRows     = 11
	SaveTokenLength    = 256
	SaveMinKeyLength   = 16
	SaveKeyExtraLength = 10
)
