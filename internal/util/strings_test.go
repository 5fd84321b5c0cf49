package util

import "testing"

func TestTruncateANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "short string unchanged",
			input:    "alnview",
			maxWidth: 20,
			want:     "alnview",
		},
		{
			name:     "exact width unchanged",
			input:    "alnview",
			maxWidth: 7,
			want:     "alnview",
		},
		{
			name:     "long string truncated",
			input:    "alnview header line",
			maxWidth: 10,
			want:     "alnview...",
		},
		{
			name:     "tiny width collapses to ellipsis",
			input:    "alnview",
			maxWidth: 3,
			want:     "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateANSI(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateANSI(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}
