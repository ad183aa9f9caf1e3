// Package main provides the temporal-expression extraction command-line
// tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"jatimex/internal/config"
	"jatimex/internal/export"
	"jatimex/internal/filter"
	"jatimex/internal/logger"
	"jatimex/internal/report"
	"jatimex/internal/timex"
	"jatimex/internal/validator"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	text := flag.String("text", "", "Text to extract temporal expressions from (default: read stdin)")
	sign := flag.Bool("sign", false, "Sign the rendered report with a metadata block")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	var cfg *config.Config

	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		cfg = loaded
	} else {
		cfg = &config.Config{Logging: config.LoggingConfig{Level: "info"}}
	}

	log := logger.NewLogger(cfg.Logging.Level)

	input := *text
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Error(fmt.Sprintf("failed to read stdin: %v", err))
			os.Exit(1)
		}

		input = string(data)
	}

	parser, err := buildParser(cfg)
	if err != nil {
		log.Error(fmt.Sprintf("failed to build parser: %v", err))
		os.Exit(1)
	}

	tags := parser.Parse(input)

	body := report.RenderTable(tags)
	if *sign {
		body = report.Sign(body)
	}

	fmt.Println(body)

	if cfg.Export.Enabled {
		sink := export.New(cfg.Export, log)

		bundle := export.Bundle{ReferenceText: input, ProcessedText: parser.ProcessedText(), Tags: tags}
		if err := sink.Send(bundle); err != nil {
			log.Error(fmt.Sprintf("export failed: %v", err))
			os.Exit(1)
		}
	}
}

func buildParser(cfg *config.Config) (*timex.Parser, error) {
	var opts []timex.Option

	if cfg.Extractor.IgnoreKansuji {
		opts = append(opts, timex.WithIgnoreKansuji(true))
	}

	if len(cfg.Extractor.DisabledFilters) > 0 {
		opts = append(opts, timex.WithFilters(filter.DefaultExcept(cfg.Extractor.DisabledFilters)))
	}

	if len(cfg.Extractor.CustomPatterns) > 0 {
		tagger, err := validator.Compile(cfg.Extractor.CustomPatterns)
		if err != nil {
			return nil, err
		}

		opts = append(opts, timex.WithCustomTagger(tagger))
	}

	if cfg.Extractor.ReferenceDate != "" {
		ref, err := time.Parse(time.RFC3339, cfg.Extractor.ReferenceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid extractor.reference_date: %w", err)
		}

		opts = append(opts, timex.WithReference(ref))
	}

	return timex.New(opts...), nil
}

func printUsage() {
	fmt.Println("Usage: extract [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println(`  extract -text "2021年7月18日に開催"`)
	fmt.Println("  echo '毎年6月から8月にかけて' | extract -config configs/extract.yaml")
}
