package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"adire-boutique/service"
)

// ImageController handles HTTP requests for product imagery: the optimized
// image endpoint the storefront and lookbook load from, and the admin sync
// that pulls new imagery in from Google Drive
type ImageController struct {
	downloadService service.DownloadServiceInterface
	syncService     service.SyncServiceInterface
}

// NewImageController creates a new ImageController
func NewImageController(downloadService service.DownloadServiceInterface, syncService service.SyncServiceInterface) *ImageController {
	return &ImageController{
		downloadService: downloadService,
		syncService:     syncService,
	}
}

// GetOptimizedImage handles GET /images/{productID}/{index}?size=thumb|medium
func (c *ImageController) GetOptimizedImage(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/images/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" {
		http.Error(w, "Expected /images/{productID}/{index}", http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		http.Error(w, "Invalid image index", http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	ctx := context.Background()
	data, err := c.downloadService.GetOptimizedImage(ctx, parts[0], index, size)
	if err != nil {
		log.Printf("❌ GetOptimizedImage: product=%s index=%d: %v", parts[0], index, err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "no image") {
			http.Error(w, "Image not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to load image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// SyncImages handles POST /admin/images/sync
// Walks the configured Drive folder and attaches new imagery to catalogue
// products by style code
func (c *ImageController) SyncImages(w http.ResponseWriter, r *http.Request) {
	folderID := os.Getenv("GOOGLE_DRIVE_FOLDER_ID")
	if folderID == "" {
		http.Error(w, "GOOGLE_DRIVE_FOLDER_ID environment variable is not set", http.StatusInternalServerError)
		return
	}

	log.Printf("📥 SyncImages: folder=%s", folderID)

	ctx := context.Background()
	attached, skipped, total, err := c.syncService.SyncProductImages(ctx, folderID)
	if err != nil {
		log.Printf("❌ SyncImages: %v", err)
		http.Error(w, fmt.Sprintf("Failed to sync images: %v", err), http.StatusInternalServerError)
		return
	}

	response := map[string]any{
		"status":   "success",
		"attached": attached,
		"skipped":  skipped,
		"total":    total,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ SyncImages: Failed to encode response: %v", err)
	}

	log.Printf("✅ SyncImages: attached=%d skipped=%d total=%d", attached, skipped, total)
}
