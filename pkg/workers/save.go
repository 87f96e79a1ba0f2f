package workers

import (
	"context"

	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/repositories"
)

// SaveHighScoreWorker persists new high scores off the game loop.
type SaveHighScoreWorker struct {
	repository        repositories.Repository
	saveHighScoreChan <-chan SaveHighScoreRequest
	done              chan struct{}
}

type NewSaveHighScoreWorkerOptions struct {
	Repository        repositories.Repository
	SaveHighScoreChan <-chan SaveHighScoreRequest
}

type SaveHighScoreRequest struct {
	Timestamp int64
	Key       string
	Score     int
}

// NewSaveHighScoreWorker creates a new SaveHighScoreWorker.
// The worker processes save requests from the game loop in order.
func NewSaveHighScoreWorker(opts NewSaveHighScoreWorkerOptions) *SaveHighScoreWorker {
	return &SaveHighScoreWorker{
		repository:        opts.Repository,
		saveHighScoreChan: opts.SaveHighScoreChan,
		done:              make(chan struct{}),
	}
}

// Start saves requests until the context is cancelled, then saves whatever
// is still queued. Start must be called once.
func (w *SaveHighScoreWorker) Start(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case saveRequest := <-w.saveHighScoreChan:
			w.saveHighScore(ctx, saveRequest)
		}
	}
}

// Done is closed once Start has returned and every queued request was
// handed to the repository.
func (w *SaveHighScoreWorker) Done() <-chan struct{} {
	return w.done
}

// drain saves requests that were queued before shutdown.
func (w *SaveHighScoreWorker) drain() {
	for {
		select {
		case saveRequest := <-w.saveHighScoreChan:
			w.saveHighScore(context.Background(), saveRequest)
		default:
			return
		}
	}
}

func (w *SaveHighScoreWorker) saveHighScore(ctx context.Context, saveRequest SaveHighScoreRequest) {
	err := w.repository.SetHighScore(ctx, saveRequest.Key, saveRequest.Score, saveRequest.Timestamp)
	if err != nil {
		log.Error("Failed to save high score %d: %v", saveRequest.Score, err)
		return
	}
	log.Debug("Saved high score %d", saveRequest.Score)
}
