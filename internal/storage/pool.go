package storage

import (
	"context"
	"sync"
	"time"
)

// Upload is one pending file in a batch.
type Upload struct {
	Key         string
	ContentType string
	Data        []byte
}

// Result is the outcome of one upload. URL is set on success, Err otherwise.
type Result struct {
	Key string
	URL string
	Err error
}

// UploadPool uploads batches through a fixed number of workers pulling from
// a shared queue. Each upload gets its own timeout; one file's failure or
// timeout never aborts its siblings.
type UploadPool struct {
	storage Storage
	workers int
	timeout time.Duration
}

// NewUploadPool creates a pool with the given worker count and per-upload
// timeout. Non-positive arguments fall back to 4 workers and 30 seconds.
func NewUploadPool(storage Storage, workers int, timeout time.Duration) *UploadPool {
	if workers <= 0 {
		workers = 4
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &UploadPool{storage: storage, workers: workers, timeout: timeout}
}

// UploadAll uploads every file in the batch and returns one Result per
// Upload, in input order. Cancelling ctx stops new work; in-flight uploads
// are aborted through their per-upload contexts.
func (p *UploadPool) UploadAll(ctx context.Context, uploads []Upload) []Result {
	results := make([]Result, len(uploads))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.uploadOne(ctx, uploads[i])
			}
		}()
	}

	for i := range uploads {
		select {
		case jobs <- i:
		case <-ctx.Done():
			results[i] = Result{Key: uploads[i].Key, Err: ctx.Err()}
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (p *UploadPool) uploadOne(ctx context.Context, up Upload) Result {
	uploadCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	url, err := p.storage.Put(uploadCtx, up.Key, up.Data, up.ContentType)
	return Result{Key: up.Key, URL: url, Err: err}
}
