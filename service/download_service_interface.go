package service

import "context"

// DownloadServiceInterface defines the contract for serving optimized product imagery
type DownloadServiceInterface interface {
	// GetOptimizedImage returns the JPEG bytes for one of a product's images,
	// resized for the requested size ("thumb" or "medium"). Results are cached
	// on disk so repeated requests skip the Drive download.
	GetOptimizedImage(ctx context.Context, productID string, imageIndex int, size string) ([]byte, error)
}
