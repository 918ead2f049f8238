package sanitizer

import (
	"reflect"
	"testing"

	"trainbook/pkg/model"
)

func TestSplitIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple list",
			input: "P1;P2;P3",
			want:  []string{"P1", "P2", "P3"},
		},
		{
			name:  "whitespace around tokens",
			input: " P1 ; P2 ;P3 ",
			want:  []string{"P1", "P2", "P3"},
		},
		{
			name:  "empty tokens dropped",
			input: "P1;;P2;",
			want:  []string{"P1", "P2"},
		},
		{
			name:  "duplicates kept",
			input: "P1;P2;P1",
			want:  []string{"P1", "P2", "P1"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "only separators",
			input: " ; ;; ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitIDs(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitIDs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoinIDs_RoundTrip(t *testing.T) {
	ids := []string{"P1", "P2", "P1"}
	if got := SplitIDs(JoinIDs(ids)); !reflect.DeepEqual(got, ids) {
		t.Errorf("SplitIDs(JoinIDs(%v)) = %v", ids, got)
	}
}

func TestCompactValues(t *testing.T) {
	got := CompactValues([]string{" Lecture ", "", "  ", "Workshop", "Lecture"})
	want := []string{"Lecture", "Workshop", "Lecture"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CompactValues() = %v, want %v", got, want)
	}
}

func TestSanitizeCandidate(t *testing.T) {
	c := &model.CandidateBooking{
		Type:         "  Fire   safety ",
		Room:         " A ",
		Trainer:      "Ivanenko\tO.",
		Date:         " 2024-01-08 ",
		Start:        "10:00 ",
		End:          " 11:00",
		Participants: " P1 ; P2 ",
	}

	SanitizeCandidate(c)

	want := &model.CandidateBooking{
		Type:         "Fire safety",
		Room:         "A",
		Trainer:      "Ivanenko O.",
		Date:         "2024-01-08",
		Start:        "10:00",
		End:          "11:00",
		Participants: " P1 ; P2 ",
	}
	if !reflect.DeepEqual(c, want) {
		t.Errorf("SanitizeCandidate() = %+v, want %+v", c, want)
	}

	SanitizeCandidate(nil)
}
