package main

import "testing"

func TestProfileAddr(t *testing.T) {
	tests := []struct {
		env, want string
	}{
		{"", ""},
		{"1", "localhost:6060"},
		{"127.0.0.1:7070", "127.0.0.1:7070"},
	}
	for _, tt := range tests {
		if got := profileAddr(tt.env); got != tt.want {
			t.Errorf("profileAddr(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}
