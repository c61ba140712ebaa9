package holder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectableTapNotifiesListener(t *testing.T) {
	adapter := newSpyAdapter()
	var taps []int
	s := NewSelectable(stubView{}, adapter, SelectableOptions{
		OnTap: func(position int) bool {
			taps = append(taps, position)
			return true
		},
	})
	s.Bind(2)

	s.Tap(s.View())

	require.Equal(t, []int{2}, taps)
	require.Equal(t, []int{2}, adapter.toggleCalls, "handled tap should toggle selection")
	require.True(t, adapter.selected[2])
}

func TestSelectableTapUnhandledKeepsSelection(t *testing.T) {
	adapter := newSpyAdapter()
	s := NewSelectable(stubView{}, adapter, SelectableOptions{
		OnTap: func(int) bool { return false },
	})
	s.Bind(1)

	s.Tap(s.View())

	require.Empty(t, adapter.toggleCalls)
}

func TestSelectableTapWithoutListener(t *testing.T) {
	adapter := newSpyAdapter()
	s := NewSelectable(stubView{}, adapter, SelectableOptions{})
	s.Bind(0)

	s.Tap(s.View())

	require.Empty(t, adapter.toggleCalls)
}

func TestSelectableTapIgnoredWhileDragging(t *testing.T) {
	adapter := newSpyAdapter()
	called := false
	s := NewSelectable(stubView{}, adapter, SelectableOptions{
		OnTap: func(int) bool { called = true; return true },
	})
	s.Bind(3)
	s.ActionStateChanged(3, ActionStateDrag)

	s.Tap(s.View())

	require.False(t, called, "tap listener must stay quiet mid-drag")
	require.Empty(t, adapter.toggleCalls)
}

func TestSelectableTapSelectionModeIdle(t *testing.T) {
	adapter := newSpyAdapter()
	adapter.mode = ModeIdle
	s := NewSelectable(stubView{}, adapter, SelectableOptions{
		OnTap: func(int) bool { return true },
	})
	s.Bind(5)

	s.Tap(s.View())

	require.Empty(t, adapter.toggleCalls, "idle mode must not toggle selection")
}

func TestSelectableLongPress(t *testing.T) {
	adapter := newSpyAdapter()
	var presses []int
	s := NewSelectable(stubView{}, adapter, SelectableOptions{
		OnLongPress: func(position int) { presses = append(presses, position) },
	})
	s.Bind(7)

	require.True(t, s.LongPress(s.View()))
	require.Equal(t, []int{7}, presses)
	require.Equal(t, []int{7}, adapter.toggleCalls)
}

func TestSelectableLongPressWithoutListener(t *testing.T) {
	adapter := newSpyAdapter()
	s := NewSelectable(stubView{}, adapter, SelectableOptions{})
	s.Bind(7)

	require.False(t, s.LongPress(s.View()))
	require.Empty(t, adapter.toggleCalls)
}

func TestSelectableDisabledRowInert(t *testing.T) {
	adapter := newSpyAdapter()
	adapter.disabled[4] = true
	called := false
	s := NewSelectable(stubView{}, adapter, SelectableOptions{
		OnTap:       func(int) bool { called = true; return true },
		OnLongPress: func(int) { called = true },
	})
	s.Bind(4)

	s.Tap(s.View())
	require.False(t, s.LongPress(s.View()))

	require.False(t, called)
	require.Empty(t, adapter.toggleCalls)
}

func TestSelectableActionStateRecorded(t *testing.T) {
	adapter := newSpyAdapter()
	type change struct {
		position int
		state    ActionState
	}
	var seen []change
	s := NewSelectable(stubView{}, adapter, SelectableOptions{
		OnActionState: func(position int, state ActionState) {
			seen = append(seen, change{position, state})
		},
	})
	s.Bind(1)

	s.ActionStateChanged(1, ActionStateSwipe)
	require.Equal(t, ActionStateSwipe, s.ActionState())
	s.ActionStateChanged(1, ActionStateIdle)
	require.Equal(t, ActionStateIdle, s.ActionState())

	require.Equal(t, []change{{1, ActionStateSwipe}, {1, ActionStateIdle}}, seen)
}
