package assets

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/pixelforge/strider/config"
)

// SheetResult is one decoded sprite sheet, or the error that prevented it
// from decoding. A missing sheet is not fatal: the clip it backs simply
// never installs and every request for it stays a no-op.
type SheetResult struct {
	State config.StateID
	Img   image.Image
	Err   error
}

// SheetDir is where character sprite sheets are looked up at runtime,
// as <SheetDir>/<character>/<state>.png.
var SheetDir = "assets/images"

// LoadCharacterSheets decodes the character's sprite sheets off the frame
// loop and delivers them on the returned channel. The channel is closed
// once every sheet has either decoded or failed.
func LoadCharacterSheets(character string) <-chan SheetResult {
	out := make(chan SheetResult, len(config.StateToFileName))
	go func() {
		defer close(out)
		for state, stem := range config.StateToFileName {
			path := filepath.Join(SheetDir, character, stem+".png")
			f, err := os.Open(path)
			if err != nil {
				out <- SheetResult{State: state, Err: err}
				continue
			}
			img, _, err := image.Decode(f)
			f.Close()
			out <- SheetResult{State: state, Img: img, Err: err}
		}
	}()
	return out
}
