package i18n

import "testing"

func TestGet(t *testing.T) {
	tests := []struct {
		key  string
		vars []any
		want string
	}{
		{"ROOM", nil, "Room"},
		{"DUNGEON_SUMMARY", []any{3, 4, 5, 0}, "3 rooms, 4 corridors, 5 staircases, 0 skipped"},
		{"CorridorAir", nil, "corridor"},
		{"NOT_A_KEY", nil, "NOT_A_KEY"},
	}
	for _, tt := range tests {
		if got := Get(tt.key, tt.vars...); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
