package memhost

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/Carmen-Shannon/oxy-baker/host"
)

// Image is the in-memory image asset. Pixel data lives in an RGBA buffer; the
// packed state holds a PNG-encoded embedded copy, mirroring the host's
// pack-into-project semantics.
type Image struct {
	name      string
	kind      host.ImageKind
	alphaMode host.AlphaMode
	nonColor  bool
	pix       *image.RGBA
	packed    []byte
	filepath  string

	// mu serializes pixel access: a bake worker may be writing while the main
	// thread packs or saves (e.g. a cancellation mid-job).
	mu sync.Mutex

	// resolve maps host-relative paths to absolute ones; set by the owning host.
	resolve func(string) string
}

var _ host.Image = &Image{}

// newImage creates a generated image filled with opaque black.
func newImage(name string, width, height int, alpha bool) *Image {
	img := &Image{
		name:      name,
		kind:      host.ImageKindRaster,
		alphaMode: host.AlphaModeNone,
	}
	if alpha {
		img.alphaMode = host.AlphaModeStraight
	}
	img.pix = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img.pix, img.pix.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
	return img
}

func (i *Image) Name() string {
	return i.name
}

func (i *Image) SetName(name string) {
	i.name = name
}

func (i *Image) HasData() bool {
	return i.pix != nil
}

func (i *Image) Kind() host.ImageKind {
	return i.kind
}

func (i *Image) Size() (int, int) {
	if i.pix == nil {
		return 0, 0
	}
	b := i.pix.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) AlphaMode() host.AlphaMode {
	return i.alphaMode
}

func (i *Image) SetAlphaMode(mode host.AlphaMode) {
	i.alphaMode = mode
}

func (i *Image) SetColorDataIsNonColor(nonColor bool) {
	i.nonColor = nonColor
}

func (i *Image) ColorDataIsNonColor() bool {
	return i.nonColor
}

func (i *Image) Scale(width, height int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.pix == nil {
		return fmt.Errorf("image %s has no pixel data to scale", i.name)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), i.pix, i.pix.Bounds(), xdraw.Src, nil)
	i.pix = dst
	return nil
}

func (i *Image) Pack() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.pix == nil {
		return fmt.Errorf("image %s has no pixel data to pack", i.name)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, i.pix); err != nil {
		return fmt.Errorf("failed to encode image %s: %w", i.name, err)
	}
	i.packed = buf.Bytes()
	return nil
}

func (i *Image) Unpack() error {
	if i.packed == nil {
		return fmt.Errorf("image %s is not packed", i.name)
	}
	i.packed = nil
	return nil
}

func (i *Image) Packed() bool {
	return i.packed != nil
}

func (i *Image) Save(absPath string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.pix == nil {
		return fmt.Errorf("image %s has no pixel data to save", i.name)
	}
	f, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", absPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, i.pix); err != nil {
		return fmt.Errorf("failed to encode image %s: %w", i.name, err)
	}
	return nil
}

func (i *Image) Filepath() string {
	return i.filepath
}

func (i *Image) SetFilepath(path string) {
	i.filepath = path
}

func (i *Image) Reload() error {
	if i.filepath == "" {
		return fmt.Errorf("image %s has no external file reference", i.name)
	}
	path := i.filepath
	if i.resolve != nil {
		path = i.resolve(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	decoded, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	rgba := image.NewRGBA(decoded.Bounds())
	draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	i.mu.Lock()
	i.pix = rgba
	i.mu.Unlock()
	return nil
}

// Data exposes the raw pixel buffer for test assertions.
//
// Returns:
//   - *image.RGBA: the pixel buffer, or nil when no data is loaded
func (i *Image) Data() *image.RGBA {
	return i.pix
}

// fill overwrites the pixel buffer with a uniform color, the bake engine's
// stand-in for rasterized output.
func (i *Image) fill(c color.RGBA) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.pix == nil {
		return
	}
	draw.Draw(i.pix, i.pix.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
