package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/network"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/cbodonnell/snake/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

type testAPI struct {
	router       http.Handler
	queue        *queue.InMemoryQueue
	stateManager *state.InMemoryStateManager
	repository   *repositories.MemoryRepository
	network      *network.NetworkManager
}

func newTestAPI(t *testing.T, queueSize int) *testAPI {
	t.Helper()
	api := &testAPI{
		queue:        queue.NewInMemoryQueue(queueSize),
		stateManager: state.NewInMemoryStateManager(),
		repository:   repositories.NewMemoryRepository(),
	}
	api.network = network.NewNetworkManager(network.NewNetworkManagerOptions{
		ClientManager: network.NewClientManager(),
		CommandQueue:  api.queue,
	})
	api.router = NewRouter(NewAPIServerOptions{
		Repository:     api.repository,
		StateManager:   api.stateManager,
		CommandQueue:   api.queue,
		NetworkManager: api.network,
	})
	return api
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestCommands(t *testing.T) {
	tests := []struct {
		path string
		want interface{}
	}{
		{path: "/start", want: &types.StartCommand{}},
		{path: "/pause", want: &types.PauseCommand{}},
		{path: "/resume", want: &types.ResumeCommand{}},
		{path: "/toggle", want: &types.TogglePauseCommand{}},
		{path: "/restart", want: &types.RestartCommand{}},
		{path: "/direction/up", want: &types.DirectionCommand{Direction: types.DirectionUp}},
		{path: "/direction/LEFT", want: &types.DirectionCommand{Direction: types.DirectionLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			api := newTestAPI(t, 8)
			rec := api.do(http.MethodPost, tt.path, "")
			assert.Equal(t, http.StatusAccepted, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

			commands, err := api.queue.ReadAllMessages()
			require.NoError(t, err)
			assert.Equal(t, []interface{}{tt.want}, commands)
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	api := newTestAPI(t, 1)

	rec := api.do(http.MethodPost, "/direction/sideways", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/start", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = api.do(http.MethodOptions, "/start", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	require.Equal(t, http.StatusAccepted, api.do(http.MethodPost, "/pause", "").Code)
	rec = api.do(http.MethodPost, "/pause", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestInput(t *testing.T) {
	api := newTestAPI(t, 8)

	rec := api.do(http.MethodPost, "/input", `{"source":"swipe","dx":12,"dy":-80}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = api.do(http.MethodPost, "/input", `{"source":"keyboard","key":"Escape"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodPost, "/input", `{"source":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	commands, err := api.queue.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{&types.DirectionCommand{Direction: types.DirectionUp}}, commands)
}

func TestQueries(t *testing.T) {
	api := newTestAPI(t, 8)
	ctx := context.Background()

	assert.Equal(t, http.StatusServiceUnavailable, api.do(http.MethodGet, "/state", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, api.do(http.MethodGet, "/snapshot", "").Code)

	rec := api.do(http.MethodGet, "/highscore", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key":"snakeHighScore","score":0,"updated_at":0}`, rec.Body.String())

	require.NoError(t, api.repository.SetHighScore(ctx, "snakeHighScore", 17, 99))
	rec = api.do(http.MethodGet, "/highscore", "")
	assert.JSONEq(t, `{"key":"snakeHighScore","score":17,"updated_at":99}`, rec.Body.String())

	food := types.Position{X: 3, Y: 3}
	require.NoError(t, api.stateManager.Set(ctx, &types.GameState{
		SessionID: "s",
		Snake:     types.Snake{{X: 7, Y: 7}},
		Food:      &food,
		Direction: types.DirectionRight,
		Speed:     150 * time.Millisecond,
		Phase:     types.PhaseRunning,
	}))
	rec = api.do(http.MethodGet, "/state", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"phase":"running"`)
	assert.Contains(t, rec.Body.String(), `"direction":"RIGHT"`)

	require.NoError(t, api.stateManager.SetSnapshot(ctx, &types.Snapshot{Width: 1, Height: 1, Cells: []types.Cell{types.CellHead}}))
	rec = api.do(http.MethodGet, "/snapshot", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cells":["head"]`)
}

func TestWebSocketRoute(t *testing.T) {
	api := newTestAPI(t, 8)
	server := httptest.NewServer(api.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return api.network.ClientManager.Count() == 1
	}, time.Second, 5*time.Millisecond)
}
