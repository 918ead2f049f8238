package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "basic trim",
			input: "  hello  ",
			want:  "hello",
		},
		{
			name:  "multiple spaces",
			input: "hello    world",
			want:  "hello world",
		},
		{
			name:  "tabs and newlines",
			input: "hello\t\nworld",
			want:  "hello world",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "cyrillic preserved",
			input: "  Конференц   зала  ",
			want:  "Конференц зала",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimAndNormalize(tt.input)
			if got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := TrimAndNormalize(got); again != got {
				t.Errorf("TrimAndNormalize is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormalizeRoom_OnlyTrims(t *testing.T) {
	if got := NormalizeRoom(" Room  a "); got != "Room  a" {
		t.Errorf("NormalizeRoom() = %q, want %q", got, "Room  a")
	}
}
