package service

import "context"

// SyncServiceInterface defines the contract for product image synchronization
type SyncServiceInterface interface {
	// SyncProductImages walks a Drive folder and attaches each recognized
	// image to the matching catalogue products by style code.
	// attached = images linked to at least one product, skipped = images
	// whose style code matched nothing, total = images seen in Drive.
	SyncProductImages(ctx context.Context, folderID string) (attached int, skipped int, total int, err error)
}
