package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocal_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(filepath.Join(dir, "uploads"))
	assert.NoError(t, err)

	urlPath, err := store.Save("shot.png", strings.NewReader("image-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(urlPath, URLPrefix+"/"))
	assert.True(t, strings.HasSuffix(urlPath, ".png"))

	content, err := os.ReadFile(filepath.Join(store.Dir(), filepath.Base(urlPath)))
	assert.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))

	assert.NoError(t, store.Delete(urlPath))
	_, err = os.Stat(filepath.Join(store.Dir(), filepath.Base(urlPath)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_DeleteMissingFileIsNotAnError(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(URLPrefix+"/1700000000000.png"))
}

func TestLocal_SaveKeepsExtension(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	assert.NoError(t, err)

	urlPath, err := store.Save("picture.JPEG", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(urlPath, ".JPEG"))

	urlPath, err = store.Save("noext", strings.NewReader("y"))
	assert.NoError(t, err)
	assert.NotEmpty(t, filepath.Base(urlPath))
}
