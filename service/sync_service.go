package service

import (
	"context"
	"fmt"
	"log"

	"adire-boutique/repository"
)

// SyncService synchronizes product imagery from Google Drive into the catalogue
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	productRepo  repository.ProductRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, productRepo repository.ProductRepositoryInterface) *SyncService {
	return &SyncService{
		driveService: driveService,
		productRepo:  productRepo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncProductImages attaches Drive imagery to catalogue products by style code
func (s *SyncService) SyncProductImages(ctx context.Context, folderID string) (attached int, skipped int, total int, err error) {
	log.Printf("🔄 Starting image synchronization for folder: %s", folderID)

	images, err := s.driveService.ListProductImages(folderID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to list product images from Drive: %w", err)
	}

	total = len(images)
	log.Printf("📦 Processing %d product images from Google Drive", total)

	for _, image := range images {
		if attachErr := s.productRepo.AttachImage(ctx, image.StyleCode, image.ImageURL); attachErr != nil {
			log.Printf("⚠️  SyncProductImages: failed to attach %s (%s %s): %v", image.FileName, image.Fabric, image.Category, attachErr)
			skipped++
			continue
		}
		attached++
	}

	log.Printf("✅ SyncProductImages: attached=%d skipped=%d total=%d", attached, skipped, total)
	return attached, skipped, total, nil
}
