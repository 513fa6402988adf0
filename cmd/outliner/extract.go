package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/inkline/outliner"
	"github.com/inkline/outliner/format"
	"github.com/inkline/outliner/jsonout"
	"github.com/inkline/outliner/layout"
)

func extractCmd() *cobra.Command {
	var (
		inputPath  string
		outputDir  string
		configPath string

		minH1Ratio float64
		minH2Ratio float64
		minH3Ratio float64
		h2Indent   float64
		h3Indent   float64
		minHeading int
		maxHeading int
		minTitle   int
	)

	defaults := layout.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract outlines from a document or a directory of documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := layout.DefaultConfig()
			if configPath != "" {
				if err := applyFileConfig(configPath, &cfg); err != nil {
					return err
				}
			}

			// Explicit flags win over the config file.
			flagOverrides := map[string]func(){
				"min-h1-size-ratio":   func() { cfg.MinH1SizeRatio = minH1Ratio },
				"min-h2-size-ratio":   func() { cfg.MinH2SizeRatio = minH2Ratio },
				"min-h3-size-ratio":   func() { cfg.MinH3SizeRatio = minH3Ratio },
				"h2-indent-threshold": func() { cfg.H2IndentThreshold = h2Indent },
				"h3-indent-threshold": func() { cfg.H3IndentThreshold = h3Indent },
				"min-heading-length":  func() { cfg.MinHeadingLength = minHeading },
				"max-heading-length":  func() { cfg.MaxHeadingLength = maxHeading },
				"min-title-length":    func() { cfg.MinTitleLength = minTitle },
			}
			for name, apply := range flagOverrides {
				if cmd.Flags().Changed(name) {
					apply()
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			info, err := os.Stat(inputPath)
			if err != nil {
				return fmt.Errorf("input: %w", err)
			}
			if info.IsDir() {
				return extractDir(inputPath, outputDir, cfg)
			}
			return extractFile(inputPath, outputDir, cfg)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input document or directory of documents")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory for output JSON files")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Optional YAML config file with threshold overrides")
	cmd.Flags().Float64Var(&minH1Ratio, "min-h1-size-ratio", defaults.MinH1SizeRatio, "Minimum font size ratio for H1 detection")
	cmd.Flags().Float64Var(&minH2Ratio, "min-h2-size-ratio", defaults.MinH2SizeRatio, "Minimum font size ratio for H2 detection")
	cmd.Flags().Float64Var(&minH3Ratio, "min-h3-size-ratio", defaults.MinH3SizeRatio, "Minimum font size ratio for H3 detection")
	cmd.Flags().Float64Var(&h2Indent, "h2-indent-threshold", defaults.H2IndentThreshold, "X-coordinate threshold for H2 detection (points)")
	cmd.Flags().Float64Var(&h3Indent, "h3-indent-threshold", defaults.H3IndentThreshold, "X-coordinate threshold for H3 detection (points)")
	cmd.Flags().IntVar(&minHeading, "min-heading-length", defaults.MinHeadingLength, "Minimum heading text length (runes)")
	cmd.Flags().IntVar(&maxHeading, "max-heading-length", defaults.MaxHeadingLength, "Maximum heading text length (runes)")
	cmd.Flags().IntVar(&minTitle, "min-title-length", defaults.MinTitleLength, "Minimum title text length (runes)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// extractDir processes every supported document in a directory,
// continuing past individual failures.
func extractDir(inputDir, outputDir string, cfg layout.Config) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if format.Detect(entry.Name()) != format.Unknown {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		log.Warn().Str("dir", inputDir).Msg("no supported documents found")
		return nil
	}

	failed := 0
	for _, name := range files {
		if err := extractFile(filepath.Join(inputDir, name), outputDir, cfg); err != nil {
			log.Error().Err(err).Str("file", name).Msg("extraction failed")
			failed++
		}
	}
	log.Info().Int("processed", len(files)-failed).Int("failed", failed).Msg("batch complete")
	if failed == len(files) {
		return fmt.Errorf("all %d documents failed", failed)
	}
	return nil
}

func extractFile(path, outputDir string, cfg layout.Config) error {
	log.Debug().Str("file", path).Msg("extracting outline")

	outline, err := outliner.Open(path).WithConfig(cfg).Outline()
	if err != nil {
		return err
	}

	outPath := filepath.Join(outputDir, jsonout.OutputName(path))
	if err := jsonout.Write(outPath, outline); err != nil {
		return err
	}

	log.Info().
		Str("file", path).
		Str("output", outPath).
		Bool("title", outline.HasTitle).
		Int("entries", outline.EntryCount()).
		Msg("outline written")
	return nil
}
