package common

const (
	WorldWidth  = 1500
	WorldHeight = 900
	GroundY     = 790

	// TPS is the fixed update rate the game loop runs at.
	TPS = 60
)
