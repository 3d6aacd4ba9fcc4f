package upload

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Uploader sends a batch of files somewhere.
type Uploader interface {
	Upload(ctx context.Context, files []File) error
}

// SimulatedUploader pretends to upload: every file completes after Delay.
// Files are handled concurrently.
type SimulatedUploader struct {
	Delay time.Duration
	// OnProgress, when set, is called once per completed file. It may be
	// called from several goroutines at once.
	OnProgress func(File)
}

// NewSimulatedUploader returns an uploader with the given per-file delay.
func NewSimulatedUploader(delay time.Duration, onProgress func(File)) *SimulatedUploader {
	return &SimulatedUploader{Delay: delay, OnProgress: onProgress}
}

// Upload waits Delay for every file or until ctx is cancelled.
func (u *SimulatedUploader) Upload(ctx context.Context, files []File) error {
	if len(files) == 0 {
		return ErrNoFiles
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range files {
		g.Go(func() error {
			timer := time.NewTimer(u.Delay)
			defer timer.Stop()
			select {
			case <-gctx.Done():
				return fmt.Errorf("upload %s: %w", f.Name, gctx.Err())
			case <-timer.C:
			}
			if u.OnProgress != nil {
				u.OnProgress(f)
			}
			return nil
		})
	}
	return g.Wait()
}
