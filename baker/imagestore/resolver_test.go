package imagestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-baker/baker/imagestore"
	"github.com/Carmen-Shannon/oxy-baker/baker/pass"
	"github.com/Carmen-Shannon/oxy-baker/baker/settings"
	"github.com/Carmen-Shannon/oxy-baker/host"
	"github.com/Carmen-Shannon/oxy-baker/host/memhost"
)

func testSettings(w, ht int) *settings.Settings {
	return &settings.Settings{BaseName: "Crate", Width: w, Height: ht}
}

func TestResolveCreatesNewImage(t *testing.T) {
	h := memhost.New()

	img := imagestore.Resolve(h, pass.Diffuse, testSettings(256, 128))

	require.NotNil(t, img)
	assert.Equal(t, "Crate-diffuse", img.Name())
	w, ht := img.Size()
	assert.Equal(t, 256, w)
	assert.Equal(t, 128, ht)
	assert.Equal(t, host.AlphaModeNone, img.AlphaMode())
	assert.False(t, img.ColorDataIsNonColor())
	assert.Empty(t, h.Warnings())

	// The new image landed in the host's table.
	assert.Same(t, img, h.Images().Get("Crate-diffuse"))
}

func TestResolveAlphaAndNonColorNormalization(t *testing.T) {
	h := memhost.New()

	withAlpha := imagestore.Resolve(h, pass.DiffuseWithAlpha, testSettings(64, 64))
	assert.Equal(t, host.AlphaModeStraight, withAlpha.AlphaMode())
	assert.False(t, withAlpha.ColorDataIsNonColor())

	normal := imagestore.Resolve(h, pass.Normal, testSettings(64, 64))
	assert.Equal(t, host.AlphaModeNone, normal.AlphaMode())
	assert.True(t, normal.ColorDataIsNonColor())
}

func TestResolveReusesAndRescalesExisting(t *testing.T) {
	h := memhost.New()
	existing := h.Images().New("Crate-roughness", 64, 64, false)

	img := imagestore.Resolve(h, pass.Roughness, testSettings(128, 128))

	// Same handle, resized in place and packed to persist the resize.
	assert.Same(t, existing, img)
	w, ht := img.Size()
	assert.Equal(t, 128, w)
	assert.Equal(t, 128, ht)
	assert.True(t, img.Packed())
	assert.True(t, img.ColorDataIsNonColor())
	assert.Empty(t, h.Warnings())
}

func TestResolveReusesMatchingSizeWithoutPacking(t *testing.T) {
	h := memhost.New()
	existing := h.Images().New("Crate-roughness", 128, 128, false)

	img := imagestore.Resolve(h, pass.Roughness, testSettings(128, 128))

	assert.Same(t, existing, img)
	assert.False(t, img.Packed())
}

func TestResolveRenamesDatalessImageAside(t *testing.T) {
	h := memhost.New()
	stale := h.AddDatalessImage("Crate-normal")

	img := imagestore.Resolve(h, pass.Normal, testSettings(64, 64))

	assert.Equal(t, "Crate-normal_old", stale.Name())
	assert.Equal(t, "Crate-normal", img.Name())
	assert.NotSame(t, stale, h.Images().Get("Crate-normal"))
	assert.True(t, img.HasData())

	require.Len(t, h.Warnings(), 1)
	assert.Contains(t, h.Warnings()[0], "invalid data")
	assert.Contains(t, h.Warnings()[0], "Crate-normal_old")
}

func TestResolveRenamesRenderResultAside(t *testing.T) {
	h := memhost.New()
	render := h.AddRenderResultImage("Crate-emit", 64, 64)

	img := imagestore.Resolve(h, pass.Emit, testSettings(64, 64))

	assert.Equal(t, "Crate-emit_old", render.Name())
	assert.Equal(t, host.ImageKindRaster, img.Kind())
	assert.Len(t, h.Warnings(), 1)
}

func TestResolveRenamesAlphaMismatchAside(t *testing.T) {
	h := memhost.New()
	// Existing image has no alpha channel but the pass needs one.
	opaque := h.Images().New("Crate-diffuse", 64, 64, false)

	img := imagestore.Resolve(h, pass.DiffuseWithAlpha, testSettings(64, 64))

	assert.Equal(t, "Crate-diffuse_old", opaque.Name())
	assert.Equal(t, host.AlphaModeStraight, img.AlphaMode())
	assert.Len(t, h.Warnings(), 1)
}
