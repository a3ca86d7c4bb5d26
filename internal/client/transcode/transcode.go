// Package transcode normalizes arbitrary input images into bounded-size,
// bounded-quality artifacts before they touch storage or the network.
package transcode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"

	"github.com/CarlosParra69/Citas-sub001/internal/logging"
)

const (
	// MaxDimension bounds the longest side of a transcoded avatar.
	MaxDimension = 800

	// DefaultQuality is the JPEG quality used when the caller passes a
	// non-positive value.
	DefaultQuality = 0.7
)

// Transcoder re-encodes avatar images. The zero value is not usable;
// construct with New.
type Transcoder struct {
	log logging.Logger
}

func New(log logging.Logger) *Transcoder {
	return &Transcoder{log: log}
}

// Compress resizes the image at sourcePath to fit within
// MaxDimension×MaxDimension (aspect-preserving, never upscaling) and
// re-encodes it as JPEG at the given quality. quality is interpreted on
// (0,1]; non-positive values fall back to DefaultQuality, values above 1
// are treated as 1.
//
// On any failure the original sourcePath is returned unchanged: a failed
// compression must never block the save/upload pipeline.
func (t *Transcoder) Compress(sourcePath string, quality float64) string {
	img, err := imaging.Open(sourcePath, imaging.AutoOrientation(true))
	if err != nil {
		t.log.Warn(context.Background(), "avatar transcode failed, using original", "path", sourcePath, "error", err)
		return sourcePath
	}

	// Fit scales down only; smaller images pass through untouched.
	img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)

	out := filepath.Join(os.TempDir(), fmt.Sprintf("avatar_compressed_%d.jpg", time.Now().UnixNano()))
	if err := imaging.Save(img, out, imaging.JPEGQuality(jpegQuality(quality))); err != nil {
		t.log.Warn(context.Background(), "avatar transcode failed, using original", "path", sourcePath, "error", err)
		return sourcePath
	}

	return out
}

// jpegQuality maps the (0,1] quality contract onto the codec's 1..100 scale.
func jpegQuality(quality float64) int {
	if quality <= 0 {
		quality = DefaultQuality
	}
	if quality > 1 {
		quality = 1
	}
	q := int(quality * 100)
	if q < 1 {
		q = 1
	}
	return q
}
