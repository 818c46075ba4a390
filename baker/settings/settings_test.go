package settings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-baker/baker/pass"
	"github.com/Carmen-Shannon/oxy-baker/baker/settings"
	"github.com/Carmen-Shannon/oxy-baker/host/memhost"
)

func TestDefault(t *testing.T) {
	h := memhost.New(memhost.WithBakeMargin(7))
	obj := memhost.NewObject("Crate")

	s := settings.Default(h, obj)

	assert.Equal(t, "Crate", s.BaseName)
	assert.False(t, s.SaveToFile)
	assert.Equal(t, settings.DefaultDirectory, s.Directory)
	assert.Equal(t, settings.DefaultImageSize, s.Width)
	assert.Equal(t, settings.DefaultImageSize, s.Height)
	assert.Equal(t, 7, s.SeamMargin)
	assert.Equal(t, settings.UVMapNone, s.UVMap)
	assert.Equal(t, []pass.Pass{pass.Diffuse, pass.Roughness, pass.Normal}, s.SelectedPasses())
}

func TestSelectedPassesAlphaToggleIsExclusive(t *testing.T) {
	s := &settings.Settings{BakeDiffuse: true}
	assert.Equal(t, []pass.Pass{pass.Diffuse}, s.SelectedPasses())

	s.WithAlpha = true
	assert.Equal(t, []pass.Pass{pass.DiffuseWithAlpha}, s.SelectedPasses())

	// The alpha toggle alone selects nothing.
	s.BakeDiffuse = false
	assert.Empty(t, s.SelectedPasses())
}

func TestSelectedPassesCatalogOrder(t *testing.T) {
	s := &settings.Settings{
		BakeDiffuse:   true,
		BakeRoughness: true,
		BakeMetallic:  true,
		BakeNormal:    true,
		BakeEmit:      true,
	}
	assert.Equal(t,
		[]pass.Pass{pass.Diffuse, pass.Roughness, pass.Metallic, pass.Normal, pass.Emit},
		s.SelectedPasses())
}

func TestImageName(t *testing.T) {
	s := &settings.Settings{BaseName: "Crate"}
	assert.Equal(t, "Crate-diffuse", s.ImageName(pass.Diffuse))
	assert.Equal(t, "Crate-diffuse", s.ImageName(pass.DiffuseWithAlpha))
	assert.Equal(t, "Crate-metallic", s.ImageName(pass.Metallic))
	assert.Equal(t, "Crate-normal", s.ImageName(pass.Normal))
}

func TestMapRoundTrip(t *testing.T) {
	h := memhost.New()
	obj := memhost.NewObject("Crate", memhost.WithUVLayers("UVMap", "Lightmap"))

	s := settings.Default(h, obj)
	s.SaveToFile = true
	s.Directory = "//textures"
	s.Width = 2048
	s.Height = 512
	s.UVMap = "Lightmap"
	s.BakeMetallic = true
	s.BakeEmit = true

	restored := settings.Default(h, obj).FromMap(s.ToMap(), obj.UVLayerNames())
	assert.Equal(t, s, restored)
}

func TestFromMapIgnoresUnknownAndMissingKeys(t *testing.T) {
	h := memhost.New(memhost.WithBakeMargin(3))
	obj := memhost.NewObject("Crate")

	s := settings.Default(h, obj)
	s.FromMap(map[string]any{
		"image_width":     2048,
		"some_future_key": "ignored",
	}, obj.UVLayerNames())

	assert.Equal(t, 2048, s.Width)
	// Missing keys keep their defaults.
	assert.Equal(t, settings.DefaultImageSize, s.Height)
	assert.Equal(t, "Crate", s.BaseName)
	assert.Equal(t, 3, s.SeamMargin)
}

func TestFromMapRejectsStaleUVMap(t *testing.T) {
	h := memhost.New()
	obj := memhost.NewObject("Crate", memhost.WithUVLayers("UVMap"))

	s := settings.Default(h, obj)
	s.UVMap = "UVMap"
	s.FromMap(map[string]any{"uv_map": "DeletedMap"}, obj.UVLayerNames())

	assert.Equal(t, "UVMap", s.UVMap)

	// The sentinel is always accepted.
	s.FromMap(map[string]any{"uv_map": settings.UVMapNone}, obj.UVLayerNames())
	assert.Equal(t, settings.UVMapNone, s.UVMap)
}

func TestFromMapToleratesNumericTypes(t *testing.T) {
	s := &settings.Settings{Width: 64, Height: 64}
	s.FromMap(map[string]any{
		"image_width":  int64(256),
		"image_height": float64(512),
	}, nil)
	assert.Equal(t, 256, s.Width)
	assert.Equal(t, 512, s.Height)
}

func TestNormalizeClampsDimensions(t *testing.T) {
	s := &settings.Settings{Width: 0, Height: 999999, SeamMargin: -2}
	s.Normalize()
	assert.Equal(t, 1, s.Width)
	assert.Equal(t, settings.MaxImageSize, s.Height)
	assert.Equal(t, 0, s.SeamMargin)
}

func TestPresetRoundTrip(t *testing.T) {
	path := t.TempDir() + "/bake.toml"

	s := &settings.Settings{
		BaseName:      "Crate",
		SaveToFile:    true,
		Directory:     "//textures",
		Width:         2048,
		Height:        2048,
		SeamMargin:    8,
		UVMap:         "Lightmap",
		BakeDiffuse:   true,
		BakeRoughness: true,
	}
	require.NoError(t, s.SavePreset(path))

	loaded, err := settings.LoadPreset(path, []string{"Lightmap"})
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadPresetValidatesUVMap(t *testing.T) {
	path := t.TempDir() + "/bake.toml"

	s := &settings.Settings{BaseName: "Crate", Width: 1024, Height: 1024, UVMap: "Lightmap"}
	require.NoError(t, s.SavePreset(path))

	loaded, err := settings.LoadPreset(path, []string{"UVMap"})
	require.NoError(t, err)
	assert.Equal(t, settings.UVMapNone, loaded.UVMap)
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := settings.LoadPreset(t.TempDir()+"/absent.toml", nil)
	require.Error(t, err)
}
