package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/jashn/internal/logger"
	"github.com/youruser/jashn/internal/util"
)

// MaxPosterImages is the most photos a poster uses.
const MaxPosterImages = 5

var errLocalFilesDisabled = errors.New("local image paths are not allowed")

// DecodeImage decodes any supported format, applying EXIF orientation.
func DecodeImage(b []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Loader resolves image sources: http(s) URLs, base64 data URLs and, when
// AllowLocalFiles is set, filesystem paths.
type Loader struct {
	Client          *http.Client
	AllowLocalFiles bool
}

// LoadImages fetches remote and data-URL sources with client.
func LoadImages(ctx context.Context, client *http.Client, sources []string, limit int) []image.Image {
	l := &Loader{Client: client}
	return l.Load(ctx, sources, limit)
}

// Load resolves at most limit sources concurrently and returns the decoded
// images in source order. Failed sources are logged and left out.
func (l *Loader) Load(ctx context.Context, sources []string, limit int) []image.Image {
	if limit <= 0 || limit > MaxPosterImages {
		limit = MaxPosterImages
	}
	if len(sources) > limit {
		sources = sources[:limit]
	}

	slots := make([]image.Image, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			img, err := l.loadOne(gctx, src)
			if err != nil {
				logger.WithFields(map[string]interface{}{
					"index":  i,
					"source": abbreviate(src),
				}).Warnf("skip poster image: %v", err)
				return nil
			}
			slots[i] = img
			return nil
		})
	}
	_ = g.Wait()

	return usableImages(slots)
}

func (l *Loader) loadOne(ctx context.Context, src string) (image.Image, error) {
	src = strings.TrimSpace(src)
	var (
		b   []byte
		err error
	)
	switch {
	case src == "":
		return nil, errors.New("empty source")
	case strings.HasPrefix(src, "data:"):
		b, err = decodeDataURL(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		b, err = util.GetBytes(ctx, l.Client, src)
	case l.AllowLocalFiles:
		b, err = os.ReadFile(src)
	default:
		return nil, errLocalFilesDisabled
	}
	if err != nil {
		return nil, err
	}
	return DecodeImage(b)
}

// decodeDataURL handles data:[<mediatype>][;base64],<data>.
func decodeDataURL(s string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data url")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return []byte(payload), nil
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("data url: %w", err)
	}
	return b, nil
}

func abbreviate(s string) string {
	if len(s) > 64 {
		return s[:64] + "..."
	}
	return s
}
