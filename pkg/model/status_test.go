package model

import (
	"testing"
	"time"
)

func TestEventStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if EventStatus("archived").Valid() {
		t.Error("archived should not be a valid status")
	}
	if EventStatus("").Valid() {
		t.Error("empty status should not be valid")
	}
}

func TestEventStatus_ActiveForConflict(t *testing.T) {
	tests := []struct {
		status EventStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusCompleted, true},
		{StatusCancelled, false},
		{StatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.ActiveForConflict(); got != tt.want {
				t.Errorf("ActiveForConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventStatus_CanTransitionTo(t *testing.T) {
	// The current policy is deliberately permissive: any valid state may
	// move to any other valid state, including pending straight to
	// completed and completed back to pending.
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			if !from.CanTransitionTo(to) {
				t.Errorf("%s -> %s should be allowed", from, to)
			}
		}
	}

	if StatusPending.CanTransitionTo(EventStatus("archived")) {
		t.Error("transition to an unknown status should be refused")
	}
}

func TestEventUpdate_TouchesSchedule(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		update EventUpdate
		want   bool
	}{
		{"empty patch", EventUpdate{}, false},
		{"status only", EventUpdate{Status: StatusApproved}, false},
		{"title only", EventUpdate{Title: "New title"}, false},
		{"start time", EventUpdate{StartTime: &now}, true},
		{"end time", EventUpdate{EndTime: &now}, true},
		{"allocation", EventUpdate{Allocation: &Allocation{FacilityID: ""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.update.TouchesSchedule(); got != tt.want {
				t.Errorf("TouchesSchedule() = %v, want %v", got, tt.want)
			}
		})
	}
}
