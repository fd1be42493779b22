package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaleri/go-holdkit/holdkit/input/action"
	"github.com/mvaleri/go-holdkit/holdkit/input/event"
)

func TestSelector_Single(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selector
		want    action.Action
		wantErr bool
	}{
		{
			name: "single action",
			sel:  Select(action.ButtonA),
			want: action.ButtonA,
		},
		{
			name:    "empty selector",
			sel:     Selector{},
			wantErr: true,
		},
		{
			name:    "chord of two keys",
			sel:     Selector{Actions: []action.Action{action.ButtonA, action.ButtonB}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, err := tt.sel.Single()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelector)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, act)
		})
	}
}

func TestNewSource_RejectsChords(t *testing.T) {
	mgr := NewManager()

	src, err := NewSource(mgr, Selector{Actions: []action.Action{action.ButtonA, action.ButtonB}})
	assert.ErrorIs(t, err, ErrInvalidSelector)
	assert.Nil(t, src)
}

func TestSource_ActivationCycle(t *testing.T) {
	mgr := NewManager()
	src, err := NewSource(mgr, Select(action.ButtonA))
	require.NoError(t, err)

	var activated, deactivated []event.Args
	src.OnActivated(func(args event.Args) { activated = append(activated, args) })
	src.OnDeactivated(func(args event.Args) { deactivated = append(deactivated, args) })

	mgr.Trigger(action.ButtonA, event.Press, 1)
	mgr.Trigger(action.ButtonA, event.Release, 0)

	assert.Len(t, activated, 1)
	assert.Len(t, deactivated, 1)
	assert.Equal(t, action.ButtonA, activated[0].Action)
}

func TestSource_DedupesRepeatedPress(t *testing.T) {
	mgr := NewManager()
	src, err := NewSource(mgr, Select(action.ButtonA))
	require.NoError(t, err)

	activations := 0
	src.OnActivated(func(event.Args) { activations++ })

	// Key repeat: several Press triggers with no intervening Release.
	mgr.Trigger(action.ButtonA, event.Press, 1)
	mgr.Trigger(action.ButtonA, event.Press, 1)
	mgr.Trigger(action.ButtonA, event.Press, 1)

	assert.Equal(t, 1, activations)
}

func TestSource_ReleaseWithoutPressIsIgnored(t *testing.T) {
	mgr := NewManager()
	src, err := NewSource(mgr, Select(action.ButtonB))
	require.NoError(t, err)

	deactivations := 0
	src.OnDeactivated(func(event.Args) { deactivations++ })

	mgr.Trigger(action.ButtonB, event.Release, 0)
	assert.Equal(t, 0, deactivations)
}

func TestSource_IgnoresOtherActions(t *testing.T) {
	mgr := NewManager()
	src, err := NewSource(mgr, Select(action.ButtonA))
	require.NoError(t, err)

	activations := 0
	src.OnActivated(func(event.Args) { activations++ })

	mgr.Trigger(action.ButtonB, event.Press, 1)
	assert.Equal(t, 0, activations)
}

func TestSource_DestroyIsIdempotent(t *testing.T) {
	mgr := NewManager()
	src, err := NewSource(mgr, Select(action.ButtonA))
	require.NoError(t, err)

	activations := 0
	src.OnActivated(func(event.Args) { activations++ })

	src.Destroy()
	src.Destroy()

	mgr.Trigger(action.ButtonA, event.Press, 1)
	assert.Equal(t, 0, activations, "destroyed source must not dispatch")
}
