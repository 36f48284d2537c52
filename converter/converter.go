package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/strukturag/libheif/go/heif"
	"go.uber.org/zap"

	"heicConverter/validation"
)

var (
	ErrDecodeInit     = errors.New("could not read HEIC file")
	ErrNoPrimaryImage = errors.New("could not get primary image handle")
	ErrDecode         = errors.New("could not decode image")
	ErrOutputOpen     = errors.New("could not create output file")
)

type Converter struct {
	logger *zap.Logger
}

func NewConverter(logger *zap.Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert decodes one HEIC file and writes it as a baseline JPEG into
// outputDir, returning the path of the written file. Quality is assumed to
// be validated by the caller. On any failure the partial output file, if
// one was created, is removed.
func (c *Converter) Convert(inputPath, outputDir string, quality int) (string, error) {
	c.logger.Info("Starting conversion",
		zap.String("input", inputPath),
		zap.String("output_dir", outputDir),
		zap.Int("quality", quality),
	)

	if err := c.sniff(inputPath); err != nil {
		return "", err
	}

	heifCtx, err := heif.NewContext()
	if err != nil {
		c.logger.Error("Failed to allocate HEIF context", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrDecodeInit, err)
	}

	if err := heifCtx.ReadFromFile(inputPath); err != nil {
		c.logger.Error("Failed to read HEIC file",
			zap.String("path", inputPath),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w %s: %v", ErrDecodeInit, inputPath, err)
	}

	handle, err := heifCtx.GetPrimaryImageHandle()
	if err != nil {
		c.logger.Error("Failed to get primary image handle",
			zap.String("path", inputPath),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", ErrNoPrimaryImage, err)
	}

	heifImg, err := handle.DecodeImage(heif.ColorspaceRGB, heif.ChromaInterleavedRGB, nil)
	if err != nil {
		c.logger.Error("Failed to decode image",
			zap.String("path", inputPath),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	img, err := heifImg.GetImage()
	if err != nil {
		c.logger.Error("Failed to convert decoded raster",
			zap.String("path", inputPath),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	outputPath := filepath.Join(outputDir, outputName(inputPath))

	out, err := os.Create(outputPath)
	if err != nil {
		c.logger.Error("Failed to create output file",
			zap.String("path", outputPath),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w %s: %v", ErrOutputOpen, outputPath, err)
	}

	if err := imaging.Encode(out, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		out.Close()
		os.Remove(outputPath)
		c.logger.Error("Failed to encode JPEG",
			zap.String("path", outputPath),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to encode JPEG: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		c.logger.Error("Failed to finalize output file",
			zap.String("path", outputPath),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to finalize output file: %w", err)
	}

	bounds := img.Bounds()
	c.logger.Info("Conversion completed",
		zap.String("output", outputPath),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
	)

	return outputPath, nil
}

// sniff rejects inputs that are not HEIF containers before the decoder
// touches them, so obviously-wrong files get a clean diagnostic.
func (c *Converter) sniff(inputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		c.logger.Error("Failed to open input file",
			zap.String("path", inputPath),
			zap.Error(err),
		)
		return fmt.Errorf("%w %s: %v", ErrDecodeInit, inputPath, err)
	}
	defer f.Close()

	if err := validation.DetectHEIF(f); err != nil {
		c.logger.Error("Input is not a HEIF container",
			zap.String("path", inputPath),
			zap.Error(err),
		)
		return fmt.Errorf("%w %s: %v", ErrDecodeInit, inputPath, err)
	}

	return nil
}

func outputName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
}
