package controller

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"adire-boutique/service"
)

// LookbookController handles HTTP requests for lookbook generation
type LookbookController struct {
	lookbookService service.LookbookServiceInterface
}

// NewLookbookController creates a new LookbookController
func NewLookbookController(lookbookService service.LookbookServiceInterface) *LookbookController {
	return &LookbookController{
		lookbookService: lookbookService,
	}
}

// GetLookbookItems handles GET /admin/lookbook/items
// Returns the product data the lookbook would render, as JSON
func (c *LookbookController) GetLookbookItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	ctx := context.Background()
	items, err := c.lookbookService.GetLookbookItems(ctx, category)
	if err != nil {
		log.Printf("❌ GetLookbookItems: %v", err)
		http.Error(w, fmt.Sprintf("Failed to load lookbook items: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{"items": items}); err != nil {
		log.Printf("❌ GetLookbookItems: Error encoding response: %v", err)
	}
}

// RenderLookbook handles GET /admin/lookbook/render
// Serves the lookbook HTML. Chromedp loads this endpoint during PDF/PNG
// capture; direct browser viewing passes ?base64=true to inline the images.
func (c *LookbookController) RenderLookbook(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	useBase64 := r.URL.Query().Get("base64") == "true"

	log.Printf("📥 RenderLookbook: category=%s base64=%v", category, useBase64)

	ctx := context.Background()
	html, err := c.lookbookService.RenderLookbookHTML(ctx, category, useBase64)
	if err != nil {
		log.Printf("❌ RenderLookbook: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render lookbook: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// DownloadPDF handles GET /admin/lookbook/pdf
func (c *LookbookController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	log.Printf("📥 DownloadPDF: category=%s", category)

	ctx := context.Background()
	pdf, err := c.lookbookService.GeneratePDF(ctx, category)
	if err != nil {
		log.Printf("❌ DownloadPDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("lookbook-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)

	log.Printf("✅ DownloadPDF: generated %d bytes", len(pdf))
}

// DownloadPNG handles GET /admin/lookbook/png
// Bundles the per-page screenshots into a single zip for sharing on WhatsApp
// and Instagram, where PDFs do not preview
func (c *LookbookController) DownloadPNG(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	log.Printf("📥 DownloadPNG: category=%s", category)

	ctx := context.Background()
	pages, err := c.lookbookService.GeneratePNG(ctx, category)
	if err != nil {
		log.Printf("❌ DownloadPNG: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PNG pages: %v", err), http.StatusInternalServerError)
		return
	}

	pageNums := make([]int, 0, len(pages))
	for n := range pages {
		pageNums = append(pageNums, n)
	}
	sort.Ints(pageNums)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, n := range pageNums {
		f, err := zw.Create(fmt.Sprintf("lookbook-page-%02d.png", n))
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to build zip: %v", err), http.StatusInternalServerError)
			return
		}
		if _, err := f.Write(pages[n]); err != nil {
			http.Error(w, fmt.Sprintf("Failed to build zip: %v", err), http.StatusInternalServerError)
			return
		}
	}
	if err := zw.Close(); err != nil {
		http.Error(w, fmt.Sprintf("Failed to build zip: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("lookbook-%s.zip", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())

	log.Printf("✅ DownloadPNG: generated %d pages", len(pages))
}
