// Package embed runs the image-to-literal pipeline: load the image, render
// the literal, then write it out in one piece.
package embed

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"retroembed/internal/image"
	"retroembed/internal/literal"
)

// Config selects the image and where the literal goes.
type Config struct {
	ImagePath    string          // defaults to image.DefaultPath
	ByteOrder    image.ByteOrder // defaults to little-endian
	OutputWriter io.Writer       // defaults to os.Stdout
	Logger       *zap.Logger     // defaults to a no-op logger
}

func (cfg Config) withDefaults() Config {
	if cfg.ImagePath == "" {
		cfg.ImagePath = image.DefaultPath
	}
	if cfg.ByteOrder == "" {
		cfg.ByteOrder = image.LittleEndian
	}
	if cfg.OutputWriter == nil {
		cfg.OutputWriter = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// Run loads the image and writes its literal to cfg.OutputWriter. If loading
// fails nothing is written.
func Run(cfg Config) error {
	cfg = cfg.withDefaults()
	log := cfg.Logger.With(zap.String("image", cfg.ImagePath))

	log.Debug("loading image", zap.String("byte_order", string(cfg.ByteOrder)))

	img, err := image.Load(cfg.ImagePath, cfg.ByteOrder)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	log.Debug("image loaded",
		zap.Int64("bytes", img.Size()),
		zap.Int("cells", img.Len()))

	var buf bytes.Buffer
	f := literal.NewFormatter(&buf)
	if err := f.Format(img.Cells); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	if _, err := cfg.OutputWriter.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	log.Debug("literal written",
		zap.Int("lines", f.Lines()),
		zap.Int("bytes", buf.Len()))
	return nil
}
