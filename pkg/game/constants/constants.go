package constants

import "time"

const (
	// GridSize is the default number of cells per side
	GridSize int = 15
	// MinGridSize is the smallest board that still has a playable interior when walled
	MinGridSize int = 4
	// MaxGridSize bounds the snapshot size sent to display layers
	MaxGridSize int = 64

	// InitialSpeed is the tick interval of a new game
	InitialSpeed time.Duration = 150 * time.Millisecond
	// MinSpeed is the floor of the tick interval
	MinSpeed time.Duration = 50 * time.Millisecond
	// SpeedDecrement is subtracted from the interval on every speed-up
	SpeedDecrement time.Duration = 10 * time.Millisecond
	// SpeedUpEvery is the score multiple that triggers a speed-up
	SpeedUpEvery int = 5

	// FoodStartingX is the x of the food shown before the first start
	FoodStartingX int = 3
	// FoodStartingY is the y of the food shown before the first start
	FoodStartingY int = 3

	// SwipeThreshold is the minimum travel in pixels before a swipe counts
	SwipeThreshold float64 = 30

	// HighScoreKey names the persisted high score
	HighScoreKey string = "snakeHighScore"
)
