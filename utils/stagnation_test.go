package utils

import "testing"

func TestStagnationTrackerStaticState(t *testing.T) {
	var tracker StagnationTracker

	if tracker.Observe("a") {
		t.Error("first observation should not be stagnant")
	}
	if !tracker.Observe("a") {
		t.Error("repeated state should be stagnant")
	}
}

func TestStagnationTrackerShortCycle(t *testing.T) {
	var tracker StagnationTracker

	tracker.Observe("a")
	if tracker.Observe("b") {
		t.Error("new state should not be stagnant")
	}
	// Period-2 oscillation: "a" was seen two observations ago
	if !tracker.Observe("a") {
		t.Error("period-2 cycle should be stagnant")
	}
}

func TestStagnationTrackerLongCycleIgnored(t *testing.T) {
	var tracker StagnationTracker

	for _, h := range []string{"a", "b", "c", "d"} {
		if tracker.Observe(h) {
			t.Errorf("state %q should not be stagnant", h)
		}
	}
	// "a" is four observations back, beyond the cycle window
	if tracker.Observe("a") {
		t.Error("period-4 cycle should not register as stagnation")
	}
}
