// Package main provides the batch extraction worker: it reads
// newline-delimited {"id": "...", "text": "..."} documents and writes
// newline-delimited {"id": "...", "tags": [...]} results.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"jatimex/internal/batch"
	"jatimex/internal/config"
	"jatimex/internal/filter"
	"jatimex/internal/timex"
)

type inputLine struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	cfg := &config.Config{Batch: config.BatchConfig{Concurrency: 4}}

	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		cfg = loaded
	}

	docs, err := readDocuments(os.Stdin)
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}

	pool := batch.New(cfg.Batch.Concurrency, func() batch.Parser {
		opts := []timex.Option{timex.WithIgnoreKansuji(cfg.Extractor.IgnoreKansuji)}
		if len(cfg.Extractor.DisabledFilters) > 0 {
			opts = append(opts, timex.WithFilters(filter.DefaultExcept(cfg.Extractor.DisabledFilters)))
		}

		return timex.New(opts...)
	})

	results := pool.Run(docs)

	writer := json.NewEncoder(os.Stdout)
	for _, r := range results {
		if err := writer.Encode(r); err != nil {
			log.Fatalf("failed to write result: %v", err)
		}
	}
}

func readDocuments(f *os.File) ([]batch.Document, error) {
	var docs []batch.Document

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var in inputLine
		if err := json.Unmarshal([]byte(line), &in); err != nil {
			return nil, fmt.Errorf("invalid input line %q: %w", line, err)
		}

		docs = append(docs, batch.Document{ID: in.ID, Text: in.Text})
	}

	return docs, scanner.Err()
}

func printUsage() {
	fmt.Println("Usage: worker [OPTIONS] < documents.jsonl > results.jsonl")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
