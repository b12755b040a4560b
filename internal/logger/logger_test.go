package logger

import "testing"

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "short string untouched", input: "hello", limit: 10, want: "hello"},
		{name: "exact limit untouched", input: "hello", limit: 5, want: "hello"},
		{name: "long string truncated", input: "hello world", limit: 5, want: "hello..."},
		{name: "leading whitespace trimmed", input: "  hi  ", limit: 10, want: "hi"},
		{name: "zero limit", input: "hello", limit: 0, want: ""},
		{name: "negative limit", input: "hello", limit: -1, want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Truncate(tc.input, tc.limit); got != tc.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.input, tc.limit, got, tc.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, json := range []bool{true, false} {
		for _, debug := range []bool{true, false} {
			l, err := New(json, debug)
			if err != nil {
				t.Fatalf("New(%v, %v): %v", json, debug, err)
			}
			if l == nil {
				t.Fatalf("New(%v, %v) returned nil logger", json, debug)
			}
		}
	}
}
