package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"heicConverter/config"
	"heicConverter/converter"
	"heicConverter/validation"
)

type Summary struct {
	Matched   int
	Converted int
	Failed    int
	Jobs      []*Job
}

type Runner struct {
	cfg    *config.Config
	conv   *converter.Converter
	logger *zap.Logger
}

func NewRunner(cfg *config.Config, conv *converter.Converter, logger *zap.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		conv:   conv,
		logger: logger,
	}
}

// Run converts every HEIC file in the configured input directory, one at a
// time. Entries come back from os.ReadDir sorted by filename, so the batch
// order is deterministic. A failed job is logged and skipped; only a
// missing input directory or an uncreatable output directory aborts the
// run.
func (r *Runner) Run() (*Summary, error) {
	runID := uuid.New().String()
	logger := r.logger.With(zap.String("run_id", runID))

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("could not open %s directory: %w", r.cfg.InputDir, err)
	}

	logger.Info("Batch starting",
		zap.String("input_dir", r.cfg.InputDir),
		zap.String("output_dir", r.cfg.OutputDir),
		zap.Int("quality", r.cfg.Quality),
	)

	summary := &Summary{}

	for _, entry := range entries {
		if entry.IsDir() || !validation.HasHEICExtension(entry.Name()) {
			continue
		}

		job := NewJob(filepath.Join(r.cfg.InputDir, entry.Name()))
		summary.Matched++
		summary.Jobs = append(summary.Jobs, job)

		outputPath, err := r.conv.Convert(job.InputPath, r.cfg.OutputDir, r.cfg.Quality)
		if err != nil {
			job.Status = StatusFailed
			job.ErrorMessage = err.Error()
			summary.Failed++
			logger.Error("Conversion failed",
				zap.String("job_id", job.ID),
				zap.String("input", job.InputPath),
				zap.Error(err),
			)
			continue
		}

		job.Status = StatusCompleted
		job.OutputPath = outputPath
		summary.Converted++
	}

	logger.Info("Batch completed",
		zap.Int("matched", summary.Matched),
		zap.Int("converted", summary.Converted),
		zap.Int("failed", summary.Failed),
	)

	return summary, nil
}
