package storage

import (
	"context"
	"mime/multipart"
)

// StorageService abstracts the image store used for vehicle photos.
type StorageService interface {
	UploadImage(ctx context.Context, file multipart.File, folder string) (url string, err error)
	DeleteImage(ctx context.Context, publicID string) error
}
