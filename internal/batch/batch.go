// Package batch runs many documents through independently constructed
// parsers concurrently. internal/timex.Parser's pattern registries are
// immutable and safely shared, but a single Parser's working state is
// meant for one caller at a time, so the pool keeps one Parser per worker
// rather than sharing one across goroutines.
package batch

import (
	"sync"

	"jatimex/internal/tag"
)

// Document pairs an identifier with the raw text to parse, so results can
// be matched back to their input after concurrent processing.
type Document struct {
	ID   string
	Text string
}

// Result pairs a Document's ID with the tags extracted from it.
type Result struct {
	ID   string       `json:"id"`
	Tags []*tag.TIMEX `json:"tags"`
}

// Pool runs Parse calls across a fixed number of workers, each owning its
// own Parser built by newParser.
type Pool struct {
	newParser func() Parser
	workers   int
}

// Parser is the subset of internal/timex.Parser that batch depends on,
// kept narrow so tests and callers can substitute a stub.
type Parser interface {
	Parse(text string) []*tag.TIMEX
}

// New constructs a Pool with the given worker count, each worker building
// its own parser via newParser. workers is clamped to at least 1.
func New(workers int, newParser func() Parser) *Pool {
	if workers < 1 {
		workers = 1
	}

	return &Pool{newParser: newParser, workers: workers}
}

// Run parses every document and returns the results in the same order the
// documents were given, regardless of completion order.
func (p *Pool) Run(docs []Document) []Result {
	results := make([]Result, len(docs))

	jobs := make(chan int)

	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			pr := p.newParser()

			for i := range jobs {
				results[i] = Result{ID: docs[i].ID, Tags: pr.Parse(docs[i].Text)}
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	return results
}
