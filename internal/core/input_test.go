package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{"none", nil, 0},
		{"left only", []Action{ActionLeft}, -1},
		{"right only", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"unrelated", []Action{ActionUp, ActionInteract}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame(tc.actions...)
			if got := f.Axis(ActionLeft, ActionRight); got != tc.expected {
				t.Errorf("Axis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame(ActionUp)
	c := f.Clone()
	f.Clear()

	if f.Has(ActionUp) {
		t.Error("Clear should drop actions")
	}
	if !c.Has(ActionUp) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}
