package job

import "testing"

func TestCanTransitionAndApply(t *testing.T) {
	if !CanTransition(StatusScheduled, StatusInProgress) {
		t.Fatalf("expected SCHEDULED -> IN_PROGRESS allowed")
	}
	if !CanTransition(StatusScheduled, StatusCancelled) {
		t.Fatalf("expected SCHEDULED -> CANCELLED allowed")
	}
	if CanTransition(StatusScheduled, StatusCompleted) {
		t.Fatalf("expected SCHEDULED -> COMPLETED not allowed")
	}
	if CanTransition(StatusCompleted, StatusScheduled) {
		t.Fatalf("expected COMPLETED -> SCHEDULED not allowed")
	}
	if CanTransition(StatusCancelled, StatusInProgress) {
		t.Fatalf("expected CANCELLED -> IN_PROGRESS not allowed")
	}
	// 同状态视为幂等更新
	if !CanTransition(StatusCompleted, StatusCompleted) {
		t.Fatalf("expected same-status transition allowed")
	}

	j := &Job{Status: StatusScheduled}
	if err := ApplyTransition(j, StatusInProgress); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if j.Status != StatusInProgress {
		t.Fatalf("expected status IN_PROGRESS, got %s", j.Status)
	}

	if err := ApplyTransition(j, StatusScheduled); err == nil {
		t.Fatalf("expected backwards transition to fail")
	}
	if j.Status != StatusInProgress {
		t.Fatalf("job must not change on rejected transition, got %s", j.Status)
	}

	if err := ApplyTransition(j, StatusCompleted); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if err := ApplyTransition(j, StatusInProgress); err == nil {
		t.Fatalf("expected transition out of terminal status to fail")
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"SCHEDULED", "IN_PROGRESS", "COMPLETED", "CANCELLED"} {
		if _, err := ParseStatus(raw); err != nil {
			t.Fatalf("ParseStatus(%s): %v", raw, err)
		}
	}
	for _, raw := range []string{"", "BOGUS", "scheduled", "DONE"} {
		if _, err := ParseStatus(raw); err == nil {
			t.Fatalf("expected ParseStatus(%q) to fail", raw)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(StatusScheduled) || IsTerminal(StatusInProgress) {
		t.Fatalf("SCHEDULED/IN_PROGRESS must not be terminal")
	}
	if !IsTerminal(StatusCompleted) || !IsTerminal(StatusCancelled) {
		t.Fatalf("COMPLETED/CANCELLED must be terminal")
	}
}
