package repositories

import "fmt"

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

// ErrInvalidHighScore is returned when a high score cannot be stored.
type ErrInvalidHighScore struct {
	Reason string
}

func (e *ErrInvalidHighScore) Error() string {
	return fmt.Sprintf("invalid high score: %s", e.Reason)
}

func IsInvalidHighScore(err error) bool {
	_, ok := err.(*ErrInvalidHighScore)
	return ok
}

func validateHighScore(key string, score int) error {
	if key == "" {
		return &ErrInvalidHighScore{Reason: "empty key"}
	}
	if score < 0 {
		return &ErrInvalidHighScore{Reason: fmt.Sprintf("negative score %d", score)}
	}
	return nil
}
