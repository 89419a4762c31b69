package sanitizer

import (
	"reflect"
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"leading and trailing", "  Main Auditorium  ", "Main Auditorium"},
		{"internal runs collapse", "Annual   Tech\tFest", "Annual Tech Fest"},
		{"newlines collapse", "Seminar\nHall", "Seminar Hall"},
		{"already clean", "Projector", "Projector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimAndNormalize_Idempotent(t *testing.T) {
	input := "  Open   Air  Theatre "
	once := TrimAndNormalize(input)
	twice := TrimAndNormalize(once)
	if once != twice {
		t.Errorf("not idempotent: %q != %q", once, twice)
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Smart-Board", "smartboard"},
		{"smart board", "smartboard"},
		{"  AUDIO  ", "audio"},
		{"mic#2", "mic2"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.input); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"Projector", "projector", "", "Smart Board", "smart-board"})
	want := []string{"projector", "smartboard"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags() = %v, want %v", got, want)
	}
}

func TestNormalizeIDs(t *testing.T) {
	got := NormalizeIDs([]string{"m1", "m2", "m1", ""})
	want := []string{"m1", "m2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeIDs() = %v, want %v", got, want)
	}
}
