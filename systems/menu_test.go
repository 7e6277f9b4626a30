package systems

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestCenteredX_MeasuresOnFace(t *testing.T) {
	face := basicfont.Face7x13 // 7px advance per glyph

	got := centeredX(face, "abcd", 100)
	if got != 36 {
		t.Fatalf("centeredX = %d, want 36 for a 28px string on a 100px line", got)
	}

	// Longer text on a narrow line still splits the overflow evenly
	got = centeredX(face, "abcdefghij", 50)
	if got != -10 {
		t.Fatalf("centeredX = %d, want -10 for a 70px string on a 50px line", got)
	}
}
