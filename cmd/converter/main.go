package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"heicConverter/batch"
	"heicConverter/config"
	"heicConverter/converter"
	"heicConverter/validation"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	fmt.Print("Enter JPEG quality (1-100, recommended 75-95): ")
	var quality int
	if _, err := fmt.Scan(&quality); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid quality value. Please enter a number between 1 and 100.")
		return 1
	}
	if err := validation.ValidateQuality(quality); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid quality value. Please enter a number between 1 and 100.")
		return 1
	}
	cfg.Quality = quality
	fmt.Printf("Using JPEG quality: %d\n", cfg.Quality)

	logger.Info("Converter starting",
		zap.String("input_dir", cfg.InputDir),
		zap.String("output_dir", cfg.OutputDir),
		zap.Int("quality", cfg.Quality),
	)

	runner := batch.NewRunner(cfg, converter.NewConverter(logger), logger)

	fmt.Println("Converting files...")
	summary, err := runner.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if summary.Matched == 0 {
		fmt.Printf("No HEIC files found in the %s directory.\n", cfg.InputDir)
	} else {
		fmt.Printf("Successfully converted %d photos to JPEG format.\n", summary.Converted)
	}

	return 0
}
