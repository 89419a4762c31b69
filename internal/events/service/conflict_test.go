package service

import (
	"testing"
	"time"

	"campusbook/pkg/model"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}

func testEvent(t *testing.T, id, start, end string, status model.EventStatus, alloc model.Allocation) *model.Event {
	t.Helper()
	return &model.Event{
		ID:         id,
		Title:      "Event " + id,
		StartTime:  mustParse(t, start),
		EndTime:    mustParse(t, end),
		Status:     status,
		Allocation: alloc,
	}
}

func TestFindConflict(t *testing.T) {
	facilityA := model.Allocation{FacilityID: "64f000000000000000000001"}
	facilityB := model.Allocation{FacilityID: "64f000000000000000000002"}
	projector := model.Allocation{MediaIDs: []string{"64f000000000000000000010"}}
	projectorAndMic := model.Allocation{MediaIDs: []string{"64f000000000000000000010", "64f000000000000000000011"}}

	tests := []struct {
		name         string
		candidate    *model.Event
		others       []*model.Event
		wantID       string
		wantNoHit    bool
		wantMedia    string
		wantFacility string
	}{
		{
			name:      "same facility overlapping window conflicts",
			candidate: testEvent(t, "", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusPending, facilityA),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T11:00:00Z", "2026-03-10T13:00:00Z", model.StatusApproved, facilityA),
			},
			wantID:       "e1",
			wantFacility: facilityA.FacilityID,
		},
		{
			name:      "different facilities never conflict",
			candidate: testEvent(t, "", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusPending, facilityA),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusApproved, facilityB),
			},
			wantNoHit: true,
		},
		{
			name:      "back to back bookings do not conflict",
			candidate: testEvent(t, "", "2026-03-10T12:00:00Z", "2026-03-10T14:00:00Z", model.StatusPending, facilityA),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusApproved, facilityA),
			},
			wantNoHit: true,
		},
		{
			name:      "cancelled events release their resources",
			candidate: testEvent(t, "", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusPending, facilityA),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusCancelled, facilityA),
			},
			wantNoHit: true,
		},
		{
			name:      "rejected events release their resources",
			candidate: testEvent(t, "", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusPending, facilityA),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusRejected, facilityA),
			},
			wantNoHit: true,
		},
		{
			name:      "completed events still hold their resources",
			candidate: testEvent(t, "", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusPending, facilityA),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusCompleted, facilityA),
			},
			wantID:       "e1",
			wantFacility: facilityA.FacilityID,
		},
		{
			name:      "shared media resource conflicts",
			candidate: testEvent(t, "", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusPending, projectorAndMic),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T11:30:00Z", "2026-03-10T13:00:00Z", model.StatusPending, projector),
			},
			wantID:    "e1",
			wantMedia: projector.MediaIDs[0],
		},
		{
			name:      "candidate excludes itself during update",
			candidate: testEvent(t, "e1", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusPending, facilityA),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusApproved, facilityA),
			},
			wantNoHit: true,
		},
		{
			name:      "first conflicting event wins",
			candidate: testEvent(t, "", "2026-03-10T10:00:00Z", "2026-03-10T14:00:00Z", model.StatusPending, facilityA),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T09:00:00Z", "2026-03-10T11:00:00Z", model.StatusApproved, facilityA),
				testEvent(t, "e2", "2026-03-10T12:00:00Z", "2026-03-10T13:00:00Z", model.StatusApproved, facilityA),
			},
			wantID:       "e1",
			wantFacility: facilityA.FacilityID,
		},
		{
			name:      "no claimed resources never conflicts",
			candidate: testEvent(t, "", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusPending, model.Allocation{}),
			others: []*model.Event{
				testEvent(t, "e1", "2026-03-10T10:00:00Z", "2026-03-10T12:00:00Z", model.StatusApproved, facilityA),
			},
			wantNoHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := findConflict(tt.candidate, tt.others)

			if tt.wantNoHit {
				if conflict != nil {
					t.Fatalf("expected no conflict, got %+v", conflict)
				}
				return
			}

			if conflict == nil {
				t.Fatal("expected a conflict, got none")
			}
			if conflict.EventID != tt.wantID {
				t.Errorf("conflicting event = %s, want %s", conflict.EventID, tt.wantID)
			}
			if tt.wantFacility != "" && conflict.FacilityID != tt.wantFacility {
				t.Errorf("conflicting facility = %s, want %s", conflict.FacilityID, tt.wantFacility)
			}
			if tt.wantMedia != "" && conflict.MediaID != tt.wantMedia {
				t.Errorf("conflicting media = %s, want %s", conflict.MediaID, tt.wantMedia)
			}
		})
	}
}
