package imagestore

import (
	"fmt"
	"log"
	"strings"

	"github.com/Carmen-Shannon/oxy-baker/common"
	"github.com/Carmen-Shannon/oxy-baker/host"
)

// Persist saves a baked image either to an external file or embedded in the
// project, per the save-to-file flag.
//
// When saving to a file, the directory and the image name are sanitized into
// filesystem-safe tokens, the pixel data is written to the composed absolute
// path, any embedded copy is removed, and the image's external reference is
// pointed at the new file followed by a reload — the reload acts as a
// write-then-verify step, so a reload failure is surfaced as an error while the
// image keeps its (detectable) inconsistent state. When embedding, the pixel
// data is packed into the project file and any external reference is cleared.
//
// Parameters:
//   - h: the host facade
//   - img: the image to persist
//   - dir: the output directory (may be host-relative)
//   - saveToFile: true to write an external file, false to embed
//
// Returns:
//   - error: error if the image has no data or a persistence step fails
func Persist(h host.Host, img host.Image, dir string, saveToFile bool) error {
	if !img.HasData() {
		return fmt.Errorf("cannot save image %s because it has no data", img.Name())
	}

	if !saveToFile {
		log.Printf("packing image %s into the project file", img.Name())
		return pack(img)
	}

	filePath := FilePath(dir, img.Name())
	log.Printf("saving image %s to file: %s", img.Name(), filePath)
	if err := img.Save(h.AbsPath(filePath)); err != nil {
		return fmt.Errorf("failed to save image %s: %w", img.Name(), err)
	}
	if img.Packed() {
		if err := img.Unpack(); err != nil {
			return fmt.Errorf("failed to unpack image %s: %w", img.Name(), err)
		}
	}
	img.SetFilepath(filePath)
	if err := img.Reload(); err != nil {
		return fmt.Errorf("failed to reload image %s from %s: %w", img.Name(), filePath, err)
	}
	return nil
}

// FilePath composes the sanitized output path for an image:
// "<sanitized dir>/<sanitized name>.png".
//
// Parameters:
//   - dir: the raw output directory
//   - name: the raw image name
//
// Returns:
//   - string: the sanitized file path
func FilePath(dir, name string) string {
	d := common.SanitizePath(dir)
	if !strings.HasSuffix(d, "/") {
		d += "/"
	}
	return d + common.CleanName(name) + ".png"
}

// pack embeds the image into the project file. Packing an already-packed image
// refreshes the embedded copy. The external reference is cleared so the packed
// data is authoritative.
func pack(img host.Image) error {
	if err := img.Pack(); err != nil {
		return fmt.Errorf("failed to pack image %s: %w", img.Name(), err)
	}
	if img.Filepath() != "" {
		img.SetFilepath("")
	}
	return nil
}
