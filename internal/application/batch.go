package application

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/calvers/audiorip/internal/domain"
	"github.com/calvers/audiorip/internal/ports"
)

// BatchService runs one conversion job per input file across a worker
// pool and aggregates the results.
type BatchService struct {
	converter ports.FileConverter
	board     ports.ProgressBoard
}

// NewBatchService creates a new batch orchestrator
func NewBatchService(converter ports.FileConverter, board ports.ProgressBoard) *BatchService {
	return &BatchService{
		converter: converter,
		board:     board,
	}
}

// Run converts every file using workers concurrent jobs and returns the
// batch summary. Jobs start in discovery order and finish in any order;
// result bookkeeping and log emission happen in a single collection loop,
// so workers never write shared state themselves.
func (s *BatchService) Run(ctx context.Context, files []string, workers int) domain.Summary {
	start := time.Now()

	if workers < 1 {
		workers = 1
	}

	results := make(chan domain.Result)

	// Worker pool using semaphore pattern
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	go func() {
		for idx, file := range files {
			wg.Add(1)
			sem <- struct{}{} // Acquire semaphore

			go func(slot int, src string) {
				defer wg.Done()
				defer func() { <-sem }() // Release semaphore

				sink := s.board.Slot(slot, filepath.Base(src))
				results <- s.converter.Convert(ctx, src, sink)
			}(idx%workers, file)
		}

		wg.Wait()
		close(results)
	}()

	// Single collection loop: one result at a time, in completion order.
	var all []domain.Result
	for r := range results {
		all = append(all, r)
		s.board.Record(r)
	}

	return domain.Summarize(all, time.Since(start))
}
