package driver

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/stardust/engine/assets"
	"github.com/1siamBot/stardust/engine/vfs"
)

// Texture is an ebiten image usable as a render.Texture
type Texture struct {
	img *ebiten.Image
}

func NewTexture(img image.Image) *Texture {
	return &Texture{img: ebiten.NewImageFromImage(img)}
}

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying ebiten image
func (t *Texture) Image() *ebiten.Image { return t.img }

// Textures caches textures by name and frees their GPU memory on removal
type Textures = assets.Manager[*Texture]

func NewTextures() *Textures {
	return assets.NewManager(func(t *Texture) { t.img.Deallocate() })
}

// LoadTexture reads and decodes name from fsys, caching the result in cache
func LoadTexture(cache *Textures, fsys *vfs.FS, name string) (*Texture, error) {
	return cache.Load(name, func() (*Texture, error) {
		data, err := fsys.ReadFile(name)
		if err != nil {
			return nil, err
		}
		img, err := assets.DecodeImage(name, data)
		if err != nil {
			return nil, fmt.Errorf("texture %s: %w", name, err)
		}
		return NewTexture(img), nil
	})
}

// AssetsDir finds the assets directory next to the executable, falling
// back to ./assets
func AssetsDir() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "assets")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "assets"
}
