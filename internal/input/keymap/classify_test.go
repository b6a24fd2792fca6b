package keymap

import (
	"fmt"
	"testing"

	"github.com/dshills/robofactory/internal/input/key"
)

func TestClassifyHold(t *testing.T) {
	tests := []struct {
		ticks    uint
		fallback key.Edge
		want     key.Edge
	}{
		{0, key.Release, key.Release},
		{0, key.Press, key.Press},
		{1, key.Release, key.Press},
		{29, key.Release, key.Press},
		{30, key.Release, key.Sustained},
		{45, key.Release, key.Sustained},
		{59, key.Release, key.Sustained},
		{60, key.Press, key.Release},
		{600, key.Press, key.Release},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d ticks", tt.ticks), func(t *testing.T) {
			if got := ClassifyHold(tt.ticks, tt.fallback); got != tt.want {
				t.Errorf("ClassifyHold(%d, %v) = %v, want %v", tt.ticks, tt.fallback, got, tt.want)
			}
		})
	}
}
