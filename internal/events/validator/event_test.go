package validator

import (
	"io"
	"strings"
	"testing"
	"time"

	"campusbook/pkg/logger"
	"campusbook/pkg/model"
)

func testValidator() *EventValidator {
	return NewEventValidator(logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.TEXT,
		Output: io.Discard,
	}))
}

func baseEvent() *model.Event {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &model.Event{
		Title:           "Annual Tech Symposium",
		Organizer:       "Robotics Club",
		FacultyInCharge: "Dr. Meera Nair",
		StartTime:       start,
		EndTime:         start.Add(2 * time.Hour),
		Status:          model.StatusPending,
	}
}

func TestValidateEvent(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Event)
		wantErr string
	}{
		{
			name:   "valid event passes",
			mutate: func(e *model.Event) {},
		},
		{
			name:    "missing title",
			mutate:  func(e *model.Event) { e.Title = "" },
			wantErr: "Title",
		},
		{
			name:    "missing organizer",
			mutate:  func(e *model.Event) { e.Organizer = "" },
			wantErr: "Organizer",
		},
		{
			name:    "missing faculty in charge",
			mutate:  func(e *model.Event) { e.FacultyInCharge = "" },
			wantErr: "FacultyInCharge",
		},
		{
			name:    "end not after start",
			mutate:  func(e *model.Event) { e.EndTime = e.StartTime },
			wantErr: "EndTime",
		},
		{
			name:    "unknown status",
			mutate:  func(e *model.Event) { e.Status = model.EventStatus("archived") },
			wantErr: "Status",
		},
		{
			name:    "malformed facility id",
			mutate:  func(e *model.Event) { e.Allocation.FacilityID = "not-an-object-id" },
			wantErr: "FacilityID",
		},
		{
			name:    "malformed media id",
			mutate:  func(e *model.Event) { e.Allocation.MediaIDs = []string{"nope"} },
			wantErr: "MediaIDs",
		},
		{
			name:   "empty allocation is allowed",
			mutate: func(e *model.Event) { e.Allocation = model.Allocation{} },
		},
	}

	v := testValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := baseEvent()
			tt.mutate(event)

			err := v.Validate(event)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid event, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention field %s", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	v := testValidator()

	if err := v.ValidateUpdate(&model.EventUpdate{}); err != nil {
		t.Errorf("empty patch must be valid, got %v", err)
	}

	if err := v.ValidateUpdate(&model.EventUpdate{Title: "x"}); err == nil {
		t.Error("expected error for too-short title")
	}

	if err := v.ValidateUpdate(&model.EventUpdate{Status: model.EventStatus("archived")}); err == nil {
		t.Error("expected error for unknown status")
	}

	if err := v.ValidateUpdate(&model.EventUpdate{Status: model.StatusCancelled}); err != nil {
		t.Errorf("known status must be valid, got %v", err)
	}
}
