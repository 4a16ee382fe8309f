package sprite

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/lixenwraith/racer796/parameter"
)

// Load decodes a single image file
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Sheets is the full set of images the game draws
type Sheets struct {
	Walls     Images
	Ship      image.Image
	Coin      image.Image
	Explosion image.Image
	Finish    image.Image
}

// LoadDir reads the sprite set from dir: build1.gif..buildN.gif for walls plus
// ship.gif, coin.gif, expl1.gif and finish.gif
// Missing or broken files are reported as one error; nothing is partially returned
func LoadDir(dir string) (*Sheets, error) {
	s := &Sheets{Walls: make(Images, parameter.WallImageCount)}

	for i := range s.Walls {
		img, err := Load(filepath.Join(dir, fmt.Sprintf("build%d.gif", i+1)))
		if err != nil {
			return nil, err
		}
		s.Walls[i] = img
	}

	single := []struct {
		name string
		dst  *image.Image
	}{
		{"ship.gif", &s.Ship},
		{"coin.gif", &s.Coin},
		{"expl1.gif", &s.Explosion},
		{"finish.gif", &s.Finish},
	}
	for _, item := range single {
		img, err := Load(filepath.Join(dir, item.name))
		if err != nil {
			return nil, err
		}
		*item.dst = img
	}

	return s, nil
}
