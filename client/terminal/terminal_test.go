package terminal

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockScreen records the content drawn on it
type MockScreen struct {
	tcell.Screen
	width, height int
	content       map[[2]int]rune
	shows         int
	syncs         int
	events        chan tcell.Event
}

// PollEvent returns queued events; without a queue it acts finalized
func (m *MockScreen) PollEvent() tcell.Event {
	if m.events == nil {
		return nil
	}
	return <-m.events
}

func NewMockScreen(width, height int) *MockScreen {
	return &MockScreen{width: width, height: height, content: map[[2]int]rune{}}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Clear()           { m.content = map[[2]int]rune{} }
func (m *MockScreen) Show()            { m.shows++ }
func (m *MockScreen) Sync()            { m.syncs++ }
func (m *MockScreen) row(y int) string {
	return m.text(0, m.width, y)
}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.content[[2]int{x, y}] = mainc
}

// text returns the runes drawn on row y between columns from and to
func (m *MockScreen) text(from, to, y int) string {
	var b strings.Builder
	for x := from; x < to; x++ {
		if r, ok := m.content[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

type fakeSession struct {
	mu       sync.Mutex
	snapshot *types.Snapshot
	sent     []input.Event
}

func (f *fakeSession) Snapshot() *types.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

func (f *fakeSession) Send(event input.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, event)
	return nil
}

func testSnapshot(phase types.Phase) *types.Snapshot {
	s := &types.Snapshot{
		SessionID: "s",
		Tick:      1,
		Width:     4,
		Height:    4,
		Cells:     make([]types.Cell, 16),
		Score:     2,
		HighScore: 7,
		Phase:     phase,
	}
	s.Cells[0] = types.CellWall
	s.Cells[5] = types.CellHead
	s.Cells[6] = types.CellBody
	s.Cells[10] = types.CellFood
	return s
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want string
	}{
		{key: tcell.KeyUp, want: "ArrowUp"},
		{key: tcell.KeyDown, want: "ArrowDown"},
		{key: tcell.KeyLeft, want: "ArrowLeft"},
		{key: tcell.KeyRight, want: "ArrowRight"},
		{key: tcell.KeyEnter, want: "Enter"},
		{key: tcell.KeyRune, r: 'w', want: "w"},
		{key: tcell.KeyRune, r: ' ', want: " "},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			event, ok := keyEvent(tt.key, tt.r)
			require.True(t, ok)
			assert.Equal(t, input.Event{Source: input.SourceKeyboard, Key: tt.want}, event)
			_, mapped := input.Map(event)
			assert.True(t, mapped)
		})
	}

	_, ok := keyEvent(tcell.KeyF1, 0)
	assert.False(t, ok)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.KeyEscape, 0))
	assert.True(t, isQuit(tcell.KeyCtrlC, 0))
	assert.True(t, isQuit(tcell.KeyRune, 'q'))
	assert.False(t, isQuit(tcell.KeyRune, 'r'))
	assert.False(t, isQuit(tcell.KeyUp, 0))
}

func TestRenderer_Draw(t *testing.T) {
	screen := NewMockScreen(30, 10)
	r := NewRenderer(screen)

	r.Draw(testSnapshot(types.PhaseRunning))
	assert.Equal(t, 1, screen.shows)
	// the grid is centered: (30 - 4*2) / 2 = 11
	assert.Contains(t, screen.row(0), "Score: 2  High: 7")
	assert.Equal(t, "▒▒· · · ", screen.text(11, 19, hudHeight))
	assert.Equal(t, "· ██▓▓· ", screen.text(11, 19, hudHeight+1))
	assert.Equal(t, "· · ● · ", screen.text(11, 19, hudHeight+2))

	r.Draw(testSnapshot(types.PhaseGameOver))
	assert.Contains(t, screen.row(hudHeight+2), "Game over! Score 2")

	r.Draw(nil)
	assert.Contains(t, screen.row(0), "Waiting for game")
}

func TestTerminal(t *testing.T) {
	screen := NewMockScreen(40, 12)
	session := &fakeSession{}
	term := NewTerminal(NewTerminalOptions{Screen: screen, Session: session})

	t.Run("forwards keys", func(t *testing.T) {
		assert.True(t, term.handleKey(tcell.KeyUp, 0))
		assert.True(t, term.handleKey(tcell.KeyF2, 0))
		assert.True(t, term.handleKey(tcell.KeyRune, 'r'))
		assert.False(t, term.handleKey(tcell.KeyRune, 'q'))
		assert.Equal(t, []input.Event{
			{Source: input.SourceKeyboard, Key: "ArrowUp"},
			{Source: input.SourceKeyboard, Key: "r"},
		}, session.sent)
	})

	t.Run("redraws only on change", func(t *testing.T) {
		term.frame()
		assert.Equal(t, 1, screen.shows)
		term.frame()
		assert.Equal(t, 1, screen.shows)

		session.mu.Lock()
		session.snapshot = testSnapshot(types.PhaseRunning)
		session.mu.Unlock()
		term.frame()
		assert.Equal(t, 2, screen.shows)
		term.frame()
		assert.Equal(t, 2, screen.shows)

		term.handleEvent(tcell.NewEventResize(40, 12))
		term.frame()
		assert.Equal(t, 3, screen.shows)
		assert.Equal(t, 1, screen.syncs)
	})
}

func TestPollEvents(t *testing.T) {
	t.Run("returns when stopped while the buffer is full", func(t *testing.T) {
		screen := NewMockScreen(10, 10)
		screen.events = make(chan tcell.Event, 1)
		screen.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)

		events := make(chan tcell.Event)
		stop := make(chan struct{})
		close(stop)

		done := make(chan struct{})
		go func() {
			pollEvents(screen, events, stop)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("pollEvents blocked after stop")
		}
	})

	t.Run("closes events when the screen is finalized", func(t *testing.T) {
		screen := NewMockScreen(10, 10)
		events := make(chan tcell.Event, 1)
		pollEvents(screen, events, make(chan struct{}))
		_, ok := <-events
		assert.False(t, ok)
	})
}
