package fonts

import (
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
	Small FontName = "small"
)

var fonts = map[FontName]font.Face{}

func (f FontName) Get() font.Face {
	if face, ok := fonts[f]; ok {
		return face
	}
	return basicfont.Face7x13
}

// LoadAll reads the TTF at path and builds the named faces. A missing or
// unparsable font is a warning, not an error: text falls back to the
// built-in bitmap face.
func LoadAll(path string) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: could not read font %s, using fallback: %v", path, err)
		return
	}
	loadWithSize(Body, ttf, 14)
	loadWithSize(Title, ttf, 32)
	loadWithSize(Small, ttf, 10)
}

func loadWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: could not parse font for %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}
