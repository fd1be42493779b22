package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/mvaleri/go-holdkit/holdkit/input"
	"github.com/mvaleri/go-holdkit/holdkit/input/action"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
		ok   bool
	}{
		{name: "rune key", ev: tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), want: "z", ok: true},
		{name: "space", ev: tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), want: "Space", ok: true},
		{name: "arrow", ev: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), want: "Up", ok: true},
		{name: "escape", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), want: "Escape", ok: true},
		{name: "unbound special key", ev: tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyName(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBackend_NilKeyMapFallsBackToDefaults(t *testing.T) {
	b := New(input.NewManager(), Config{})
	now := time.Now()

	b.processKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), now)

	assert.Equal(t, now, b.keyStates[action.ButtonA], "default mapping must resolve z")
}

func TestBackend_CustomKeyMapReplacesDefaults(t *testing.T) {
	b := New(input.NewManager(), Config{
		KeyMap: map[string]action.Action{"h": action.ButtonB},
	})
	now := time.Now()

	b.processKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), now)
	b.processKeyEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), now)

	assert.Equal(t, now, b.keyStates[action.ButtonB])
	assert.NotContains(t, b.keyStates, action.ButtonA, "default bindings are replaced, not merged")
}

func TestBackend_QuitKeyInvokesCallback(t *testing.T) {
	quits := 0
	b := New(input.NewManager(), Config{OnQuit: func() { quits++ }})
	b.running = true

	b.processKeyEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), time.Now())

	assert.Equal(t, 1, quits)
	assert.False(t, b.Running())
	assert.Empty(t, b.keyStates, "quit keys are not tracked as held input")
}
