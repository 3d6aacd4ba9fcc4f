package service

import (
	"context"
	"time"

	"github.com/alexanderramin/planhub/internal/upload"
)

type uploadService struct {
	uploader upload.Uploader
	observer UseCaseObserver
}

func NewUploadService(uploader upload.Uploader, observers ...UseCaseObserver) UploadService {
	return &uploadService{uploader: uploader, observer: useCaseObserverOrNoop(observers)}
}

func (s *uploadService) Upload(ctx context.Context, files []upload.File, tags []string) (err error) {
	var bytes int64
	for _, f := range files {
		bytes += f.Size
	}
	fields := map[string]any{
		"files": len(files),
		"bytes": bytes,
		"tags":  tags,
	}
	defer observe(ctx, s.observer, "upload-plan", time.Now(), fields, &err)

	return s.uploader.Upload(ctx, files)
}
