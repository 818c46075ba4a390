package imagestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-baker/baker/imagestore"
	"github.com/Carmen-Shannon/oxy-baker/host/memhost"
)

func TestPersistEmbedsImage(t *testing.T) {
	h := memhost.New()
	img := h.Images().New("Crate-diffuse", 32, 32, false)
	img.SetFilepath("//stale/path.png")

	require.NoError(t, imagestore.Persist(h, img, "//textures", false))

	assert.True(t, img.Packed())
	// The packed data is authoritative, so the external reference is dropped.
	assert.Empty(t, img.Filepath())
}

func TestPersistSavesToFile(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "textures"), 0o755))

	h := memhost.New(memhost.WithProjectDir(tmp))
	img := h.Images().New("Crate-diffuse", 32, 32, false)
	require.NoError(t, img.Pack())

	require.NoError(t, imagestore.Persist(h, img, "//textures", true))

	// The file exists, the embedded copy is gone, and the image now references
	// (and successfully reloaded from) the external file.
	assert.FileExists(t, filepath.Join(tmp, "textures", "Crate-diffuse.png"))
	assert.False(t, img.Packed())
	assert.Equal(t, "//textures/Crate-diffuse.png", img.Filepath())
	assert.True(t, img.HasData())
}

func TestPersistDatalessImage(t *testing.T) {
	h := memhost.New()
	img := h.AddDatalessImage("Crate-normal")

	err := imagestore.Persist(h, img, "//", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
}

func TestPersistSaveFailureSurfacesError(t *testing.T) {
	h := memhost.New(memhost.WithProjectDir(t.TempDir()))
	img := h.Images().New("Crate-diffuse", 32, 32, false)

	// The output directory does not exist, so the save must fail.
	err := imagestore.Persist(h, img, "//missing-dir", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save")
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, "//textures/Crate-diffuse.png", imagestore.FilePath("//textures", "Crate-diffuse"))
	assert.Equal(t, "//textures/Crate-diffuse.png", imagestore.FilePath("//textures/", "Crate-diffuse"))
	// Unsafe characters collapse to underscores; the name may not add path segments.
	assert.Equal(t, "//my_dir/my_image.png", imagestore.FilePath("//my dir", "my/image"))
}
