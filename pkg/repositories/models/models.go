package models

// HighScore is a persisted best score.
type HighScore struct {
	Key       string `json:"key"`
	Score     int    `json:"score"`
	UpdatedAt int64  `json:"updated_at"`
}
