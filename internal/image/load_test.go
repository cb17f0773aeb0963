package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(w, h, color.RGBA{G: 200, A: 255})))
	return buf.Bytes()
}

func TestLoadImagesOrderedAndSkipsFailures(t *testing.T) {
	small := pngBytes(t, 10, 12)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/small.png":
			w.Write(small)
		case "/garbage.png":
			w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, 30, 20))
	sources := []string{
		srv.URL + "/small.png",
		srv.URL + "/missing.png",
		srv.URL + "/garbage.png",
		dataURL,
		"/etc/passwd",
	}

	imgs := LoadImages(context.Background(), srv.Client(), sources, 5)
	require.Len(t, imgs, 2)
	assert.Equal(t, image.Rect(0, 0, 10, 12), imgs[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 30, 20), imgs[1].Bounds())
}

func TestLoadImagesLimit(t *testing.T) {
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, 4, 4))
	sources := make([]string, 8)
	for i := range sources {
		sources[i] = dataURL
	}
	assert.Len(t, LoadImages(context.Background(), nil, sources, 0), MaxPosterImages)
	assert.Len(t, LoadImages(context.Background(), nil, sources, 3), 3)
}

func TestLoaderLocalFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 7, 9), 0o644))

	assert.Empty(t, LoadImages(context.Background(), nil, []string{path}, 5))

	l := &Loader{AllowLocalFiles: true}
	imgs := l.Load(context.Background(), []string{path}, 5)
	require.Len(t, imgs, 1)
	assert.Equal(t, 7, imgs[0].Bounds().Dx())
}

func TestDecodeDataURL(t *testing.T) {
	b, err := decodeDataURL("data:text/plain,hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	_, err = decodeDataURL("data:image/png;base64")
	assert.Error(t, err)

	_, err = decodeDataURL("data:image/png;base64,@@@")
	assert.Error(t, err)
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage([]byte("nope"))
	assert.Error(t, err)
}
