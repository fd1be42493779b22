// Package terminal is a tcell-based frontend for interactive demos and
// tools. It translates terminal key events into Manager triggers.
//
// Terminals report key presses but never key releases, so releases are
// synthesized: a key counts as held while the terminal keeps
// auto-repeating it, and a key that stops repeating for longer than the
// repeat interval is treated as released.
package terminal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mvaleri/go-holdkit/holdkit/input"
	"github.com/mvaleri/go-holdkit/holdkit/input/action"
	"github.com/mvaleri/go-holdkit/holdkit/input/event"
)

// keyTimeout is the key expiry window, slightly longer than typical
// terminal key repeat intervals.
const keyTimeout = 100 * time.Millisecond

const maxStatusLines = 16

// Config holds construction parameters for the terminal backend.
type Config struct {
	// KeyMap maps key names to actions. Defaults to input.DefaultKeyMap.
	KeyMap map[string]action.Action

	// OnQuit is invoked when the user hits a quit key or the terminal
	// receives an interrupt.
	OnQuit func()
}

// Backend polls terminal input each frame and feeds the Manager.
type Backend struct {
	screen  tcell.Screen
	mgr     *input.Manager
	config  Config
	running bool

	keyStates  map[action.Action]time.Time // Last time each key was reported
	activeKeys map[action.Action]bool      // Keys active in the previous frame

	status []string
}

func New(mgr *input.Manager, config Config) *Backend {
	return &Backend{
		mgr:        mgr,
		config:     config,
		keyStates:  make(map[action.Action]time.Time),
		activeKeys: make(map[action.Action]bool),
	}
}

// Init takes over the terminal. Call Cleanup to restore it.
func (b *Backend) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	b.screen = screen
	b.running = true
	b.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	b.screen.Clear()
	slog.Info("Terminal backend initialized")
	return nil
}

// Update polls pending terminal events, synthesizes press/release
// triggers, and redraws the status area. Call once per frame.
func (b *Backend) Update() error {
	if !b.running {
		return nil
	}
	now := time.Now()

	for b.screen.HasPendingEvent() {
		ev := b.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			b.processKeyEvent(ev, now)
		case *tcell.EventInterrupt:
			b.quit()
		case *tcell.EventResize:
			b.screen.Sync()
		}
	}

	currentlyActive := make(map[action.Action]bool)

	for act, lastReported := range b.keyStates {
		if now.Sub(lastReported) < keyTimeout {
			currentlyActive[act] = true
			if !b.activeKeys[act] {
				slog.Debug("Key press", "action", act.String())
				b.mgr.Trigger(act, event.Press, 1)
			}
		} else {
			// Key stopped repeating - treat as released
			delete(b.keyStates, act)
		}
	}

	for act := range b.activeKeys {
		if !currentlyActive[act] {
			slog.Debug("Key release", "action", act.String())
			b.mgr.Trigger(act, event.Release, 0)
		}
	}
	b.activeKeys = currentlyActive

	b.render()
	return nil
}

// Running reports whether the backend is still accepting frames.
func (b *Backend) Running() bool {
	return b.running
}

// Log appends a line to the status area, dropping the oldest once full.
func (b *Backend) Log(line string) {
	b.status = append(b.status, line)
	if len(b.status) > maxStatusLines {
		b.status = b.status[len(b.status)-maxStatusLines:]
	}
}

// Cleanup restores the terminal. Safe to call more than once.
func (b *Backend) Cleanup() {
	if b.screen != nil {
		slog.Info("Cleaning up terminal backend")
		b.screen.Fini()
		b.screen = nil
	}
	b.running = false
}

func (b *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	name, ok := keyName(ev)
	if !ok {
		return
	}
	act, ok := b.lookup(name)
	if !ok {
		return
	}
	if act == action.ShellQuit {
		b.quit()
		return
	}
	b.keyStates[act] = now
}

// lookup resolves a key name through the configured keymap, falling
// back to the default mappings when none was provided.
func (b *Backend) lookup(name string) (action.Action, bool) {
	if b.config.KeyMap != nil {
		act, ok := b.config.KeyMap[name]
		return act, ok
	}
	return input.GetDefaultMapping(name)
}

func (b *Backend) quit() {
	b.running = false
	if b.config.OnQuit != nil {
		b.config.OnQuit()
	}
}

func (b *Backend) render() {
	b.screen.Clear()
	style := tcell.StyleDefault
	drawText(b.screen, 0, 0, style.Bold(true), "holdkit demo - q or Escape to quit")
	for i, line := range b.status {
		drawText(b.screen, 0, i+2, style, line)
	}
	b.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// specialKeys names the non-rune keys the default keymap can bind.
var specialKeys = map[tcell.Key]string{
	tcell.KeyUp:     "Up",
	tcell.KeyDown:   "Down",
	tcell.KeyLeft:   "Left",
	tcell.KeyRight:  "Right",
	tcell.KeyEnter:  "Enter",
	tcell.KeyEscape: "Escape",
	tcell.KeyTab:    "Tab",
}

func keyName(ev *tcell.EventKey) (string, bool) {
	if name, ok := specialKeys[ev.Key()]; ok {
		return name, true
	}
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return "Space", true
		}
		return string(ev.Rune()), true
	}
	return "", false
}
