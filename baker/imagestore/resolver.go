// Package imagestore locates, validates, and persists the destination images
// of bake passes. It owns no pixel computation: pixel work happens inside the
// host's image handles.
package imagestore

import (
	"log"

	"github.com/Carmen-Shannon/oxy-baker/baker/pass"
	"github.com/Carmen-Shannon/oxy-baker/baker/settings"
	"github.com/Carmen-Shannon/oxy-baker/host"
)

// Resolve locates or creates the destination image for a pass and normalizes
// it before it receives baked data.
//
// An existing image of the right name is reused when it is a plain raster image
// with loaded pixel data and a compatible alpha mode; otherwise it is renamed
// aside (suffix "_old", data preserved) with a warning and a fresh image is
// created. A reusable image whose dimensions differ from the configuration is
// packed into the project first (so no externally linked file is touched before
// the resize is confirmed), scaled in place, and packed again to persist the
// resize — the handle identity is preserved. Finally the alpha mode and the
// color-vs-data interpretation are set to match the pass.
//
// Resolve has no fatal error conditions: every conflict falls back to creating
// a new image.
//
// Parameters:
//   - h: the host facade
//   - p: the pass being baked
//   - s: the active bake settings
//
// Returns:
//   - host.Image: the normalized destination image
func Resolve(h host.Host, p pass.Pass, s *settings.Settings) host.Image {
	cfg := p.Configuration()
	name := s.ImageName(p)

	img := h.Images().Get(name)
	if img != nil && !reusable(img, cfg) {
		oldName := img.Name()
		img.SetName(oldName + "_old")
		h.Reporter().Warningf("Image '%s' has invalid data. Renaming to '%s' and creating a new image", oldName, img.Name())
		img = nil
	}

	if img == nil {
		img = h.Images().New(name, s.Width, s.Height, cfg.UseAlpha)
	} else {
		log.Printf("image %s already exists, overwriting existing image", name)
		if w, ht := img.Size(); w != s.Width || ht != s.Height {
			log.Printf("scaling image %s to %dx%d", name, s.Width, s.Height)
			if err := img.Pack(); err != nil {
				h.Reporter().Warningf("Could not pack image '%s' before scaling: %v", name, err)
			}
			if err := img.Scale(s.Width, s.Height); err != nil {
				h.Reporter().Warningf("Could not scale image '%s': %v", name, err)
			} else if err := img.Pack(); err != nil {
				h.Reporter().Warningf("Could not persist the scaling of image '%s': %v", name, err)
			}
		}
	}

	if cfg.UseAlpha {
		img.SetAlphaMode(host.AlphaModeStraight)
	} else {
		img.SetAlphaMode(host.AlphaModeNone)
	}
	img.SetColorDataIsNonColor(!cfg.IsColor)
	return img
}

// reusable reports whether an existing image can receive the pass's baked data:
// it must have pixel data loaded, must be a plain raster image, and must not
// lack an alpha channel the pass needs.
func reusable(img host.Image, cfg pass.Config) bool {
	if !img.HasData() || img.Kind() != host.ImageKindRaster {
		return false
	}
	if cfg.UseAlpha && img.AlphaMode() == host.AlphaModeNone {
		return false
	}
	return true
}
