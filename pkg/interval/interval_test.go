package interval

import (
	"errors"
	"testing"
	"time"
)

var base = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 time.Time
		want                       bool
	}{
		{
			name:   "properly interleaved",
			start1: at(0), end1: at(120), start2: at(60), end2: at(180),
			want: true,
		},
		{
			name:   "contained",
			start1: at(0), end1: at(180), start2: at(60), end2: at(120),
			want: true,
		},
		{
			name:   "identical",
			start1: at(0), end1: at(60), start2: at(0), end2: at(60),
			want: true,
		},
		{
			name:   "touching at boundary is not overlap",
			start1: at(0), end1: at(60), start2: at(60), end2: at(120),
			want: false,
		},
		{
			name:   "touching at boundary reversed",
			start1: at(60), end1: at(120), start2: at(0), end2: at(60),
			want: false,
		},
		{
			name:   "disjoint",
			start1: at(0), end1: at(30), start2: at(90), end2: at(120),
			want: false,
		},
		{
			name:   "shared start",
			start1: at(0), end1: at(30), start2: at(0), end2: at(90),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.start1, tt.end1, tt.start2, tt.end2)
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// The predicate is symmetric
			if rev := Overlaps(tt.start2, tt.end2, tt.start1, tt.end1); rev != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", rev, tt.want)
			}
		})
	}
}

func TestNew_InvalidRange(t *testing.T) {
	if _, err := New(at(60), at(60)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("zero-length interval: got %v, want ErrInvalidRange", err)
	}
	if _, err := New(at(60), at(0)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("reversed interval: got %v, want ErrInvalidRange", err)
	}
	if _, err := New(at(0), at(60)); err != nil {
		t.Errorf("valid interval: unexpected error %v", err)
	}
}

func TestValidate_ZeroTimes(t *testing.T) {
	if err := (Interval{End: at(60)}).Validate(); err == nil {
		t.Error("missing start: expected error")
	}
	if err := (Interval{Start: at(0)}).Validate(); err == nil {
		t.Error("missing end: expected error")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		startStr string
		endStr   string
		wantErr  bool
	}{
		{
			name:     "valid",
			startStr: "2025-03-10T10:00:00Z",
			endStr:   "2025-03-10T11:00:00Z",
		},
		{
			name:     "malformed start is an error, not no-overlap",
			startStr: "10 March 2025",
			endStr:   "2025-03-10T11:00:00Z",
			wantErr:  true,
		},
		{
			name:     "malformed end",
			startStr: "2025-03-10T10:00:00Z",
			endStr:   "",
			wantErr:  true,
		},
		{
			name:     "reversed range",
			startStr: "2025-03-10T11:00:00Z",
			endStr:   "2025-03-10T10:00:00Z",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := Parse(tt.startStr, tt.endStr)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := iv.Validate(); err != nil {
				t.Errorf("parsed interval failed Validate: %v", err)
			}
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	a := Interval{Start: at(0), End: at(60)}
	b := Interval{Start: at(30), End: at(90)}
	c := Interval{Start: at(60), End: at(120)}

	if !a.Overlaps(b) {
		t.Error("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Error("a and c touch at the boundary and should not overlap")
	}
}
