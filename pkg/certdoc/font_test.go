package certdoc

import (
	"testing"

	"github.com/tdewolff/canvas"
)

func TestGetFontStyle(t *testing.T) {
	tests := []struct {
		name string
		font Font
		want canvas.FontStyle
	}{
		{"Bold weight", Font{Weight: FontWeightBold}, canvas.FontBold},
		{"Regular weight", Font{Weight: FontWeightRegular}, canvas.FontRegular},
		{"Unset weight falls back to regular", Font{}, canvas.FontRegular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.font.GetFontStyle(); got != tt.want {
				t.Errorf("GetFontStyle() = %v, want %v", got, tt.want)
			}
		})
	}
}
