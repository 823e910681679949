package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"finance-tracker/internal/models"
)

const (
	TransactionAttachmentsFolder = "attachments"
	FeedbackAttachmentsFolder    = "feedback"
)

// storeAttachments saves every file under folder. Files stored before a
// failure are removed again.
func storeAttachments(ctx context.Context, store AttachmentStoreInterface, folder string, files []*multipart.FileHeader, logger *slog.Logger) (models.StringList, error) {
	paths := models.StringList{}
	for _, file := range files {
		if file == nil {
			continue
		}
		path, err := store.Save(ctx, folder, file)
		if err != nil {
			removeAttachments(ctx, store, paths, logger)
			return nil, fmt.Errorf("%w %q: %v", ErrAttachmentFailed, file.Filename, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func removeAttachments(ctx context.Context, store AttachmentStoreInterface, paths []string, logger *slog.Logger) {
	for _, path := range paths {
		if err := store.Remove(path); err != nil {
			logger.WarnContext(ctx, "failed to remove attachment",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}
}
