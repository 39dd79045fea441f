package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"adire-boutique/repository"
)

// DownloadService serves optimized product images, backed by a disk cache
// Implements DownloadServiceInterface
type DownloadService struct {
	driveService DriveServiceInterface
	productRepo  repository.ProductRepositoryInterface
}

// NewDownloadService creates a new DownloadService
func NewDownloadService(driveService DriveServiceInterface, productRepo repository.ProductRepositoryInterface) *DownloadService {
	return &DownloadService{
		driveService: driveService,
		productRepo:  productRepo,
	}
}

// Ensure DownloadService implements DownloadServiceInterface
var _ DownloadServiceInterface = (*DownloadService)(nil)

// driveFileIDFromURL extracts the file ID from a Drive direct-download URL
// of the form https://drive.google.com/uc?id=<fileID>
func driveFileIDFromURL(imageURL string) (string, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid image URL: %w", err)
	}
	fileID := parsed.Query().Get("id")
	if fileID == "" {
		return "", fmt.Errorf("image URL has no file id: %s", imageURL)
	}
	return fileID, nil
}

// GetOptimizedImage returns the optimized JPEG for a product image, fetching
// from Drive and optimizing on a cache miss
func (s *DownloadService) GetOptimizedImage(ctx context.Context, productID string, imageIndex int, size string) ([]byte, error) {
	if size != "thumb" && size != "medium" {
		size = "medium"
	}

	cachePath := GetCachePath(productID, imageIndex, size)
	if CacheExists(cachePath) {
		return ReadFromCache(cachePath)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	if imageIndex < 0 || imageIndex >= len(product.Images) {
		return nil, fmt.Errorf("product %s has no image at index %d", productID, imageIndex)
	}

	imageURL := product.Images[imageIndex]
	if !strings.Contains(imageURL, "drive.google.com") {
		return nil, fmt.Errorf("unsupported image source: %s", imageURL)
	}

	fileID, err := driveFileIDFromURL(imageURL)
	if err != nil {
		return nil, err
	}

	rawData, err := s.driveService.DownloadImage(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to download image from Drive: %w", err)
	}

	optimized, err := OptimizeImage(rawData, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize image: %w", err)
	}

	if cacheErr := SaveToCache(cachePath, optimized); cacheErr != nil {
		// Serve the image anyway; the next request just re-optimizes
		log.Printf("⚠️  GetOptimizedImage: cache write failed: %v", cacheErr)
	}

	return optimized, nil
}
