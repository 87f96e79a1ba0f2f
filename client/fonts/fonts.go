package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces used by the desktop client. The HUD uses the monospaced face so the
// score does not shift as its digits change.
var (
	TTFSmallFont font.Face
	TTFLargeFont font.Face
	TTFMonoFont  font.Face
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

func loadFonts() error {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse regular font: %v", err)
	}
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse mono font: %v", err)
	}

	TTFSmallFont = newFace(regular, 16)
	TTFLargeFont = newFace(regular, 40)
	TTFMonoFont = newFace(mono, 18)
	return nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
