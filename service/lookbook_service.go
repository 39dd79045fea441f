package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"adire-boutique/models"
	"adire-boutique/repository"
	"adire-boutique/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// LookbookService handles lookbook generation operations
type LookbookService struct {
	productRepo repository.ProductRepositoryInterface
	baseURL     string // Base URL for image endpoints (e.g., "http://localhost:8080")
}

// NewLookbookService creates a new LookbookService
func NewLookbookService(productRepo repository.ProductRepositoryInterface, baseURL string) *LookbookService {
	return &LookbookService{
		productRepo: productRepo,
		baseURL:     baseURL,
	}
}

// Ensure LookbookService implements LookbookServiceInterface
var _ LookbookServiceInterface = (*LookbookService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// waitForAssetsJS waits for fonts and every <img> on the page to settle
const waitForAssetsJS = `
	(function() {
		return Promise.all([
			document.fonts.ready,
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				return new Promise((resolve) => {
					if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
						resolve();
						return;
					}
					const timeout = setTimeout(() => resolve(), 5000);
					img.onload = () => { clearTimeout(timeout); resolve(); };
					img.onerror = () => { clearTimeout(timeout); resolve(); };
				});
			}))
		]);
	})();
`

// GetLookbookItems loads active catalogue products for the lookbook,
// optionally restricted to a single category
func (s *LookbookService) GetLookbookItems(ctx context.Context, category string) ([]models.LookbookItem, error) {
	filter := &models.ProductFilter{OnlyActive: true}
	if category != "" {
		filter.Category = category
	}

	products, err := s.productRepo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for lookbook: %w", err)
	}

	items := make([]models.LookbookItem, 0, len(products))
	for _, p := range products {
		item := models.LookbookItem{
			ID:         p.ID,
			Name:       p.Name,
			Category:   p.Category,
			Fabric:     p.Fabric,
			PriceLabel: utils.FormatNGN(p.Price),
		}
		if len(p.Images) > 0 {
			// Serve through the optimized image endpoint so the lookbook
			// uses medium-sized JPEGs instead of raw Drive originals
			item.ImageURL = fmt.Sprintf("/images/%s/0?size=medium", p.ID)
		}
		items = append(items, item)
	}
	return items, nil
}

// fetchImageAsBase64 fetches an image from the image endpoint and converts it to base64
func (s *LookbookService) fetchImageAsBase64(imageURL string) (string, error) {
	var fullURL string
	if imageURL[0] == '/' {
		fullURL = s.baseURL + imageURL
	} else {
		fullURL = imageURL
	}

	resp, err := http.Get(fullURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	return base64.StdEncoding.EncodeToString(imageData), nil
}

// convertItemsToBase64 converts image URLs to base64 for all items
func (s *LookbookService) convertItemsToBase64(items []models.LookbookItem) {
	for i := range items {
		if items[i].ImageURL == "" {
			continue
		}
		b64, err := s.fetchImageAsBase64(items[i].ImageURL)
		if err != nil {
			log.Printf("⚠️  Warning: Failed to fetch image for item %s: %v", items[i].ID, err)
			continue
		}
		items[i].ImageBase64 = b64
	}
}

// paginateItems splits items into pages of 6 looks each
func paginateItems(items []models.LookbookItem) [][]models.LookbookItem {
	const itemsPerPage = 6
	var pages [][]models.LookbookItem

	for i := 0; i < len(items); i += itemsPerPage {
		end := i + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}

	return pages
}

// RenderLookbookHTML renders the lookbook HTML template
func (s *LookbookService) RenderLookbookHTML(ctx context.Context, category string, useBase64 bool) (string, error) {
	items, err := s.GetLookbookItems(ctx, category)
	if err != nil {
		return "", err
	}

	// Base64 inlining is for direct HTML viewing; PDF/PNG capture loads the
	// image endpoints over HTTP instead
	if useBase64 {
		s.convertItemsToBase64(items)
	}

	pages := paginateItems(items)

	var logoExt string
	extensions := []string{".png", ".jpg", ".jpeg"}
	for _, ext := range extensions {
		if _, err := os.Stat(filepath.Join("static", "lookbook", "logo"+ext)); err == nil {
			logoExt = ext
			break
		}
	}

	logoURL := ""
	if logoExt != "" {
		logoURL = fmt.Sprintf("%s/static/lookbook/logo%s", s.baseURL, logoExt)
	}

	title := "Adiré Boutique Lookbook"
	if category != "" {
		title = fmt.Sprintf("Adiré Boutique — %s", category)
	}

	templateData := struct {
		Title    string
		Category string
		Pages    [][]models.LookbookItem
		LogoURL  string
	}{
		Title:    title,
		Category: category,
		Pages:    pages,
		LogoURL:  logoURL,
	}

	templatePath := filepath.Join("templates", "lookbook.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// newChromedpContext builds an allocator + browser context configured for
// the detected Chrome binary. Callers must invoke both cancel funcs.
func newChromedpContext(ctx context.Context, printPreview bool) (context.Context, context.CancelFunc, context.CancelFunc) {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.NoSandbox) // Required for running in Docker/containers
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	if printPreview {
		opts = append(opts, chromedp.Flag("enable-print-preview", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	return chromedpCtx, chromedpCancel, allocCancel
}

// GeneratePDF generates a PDF lookbook from the rendered HTML using chromedp
func (s *LookbookService) GeneratePDF(ctx context.Context, category string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromedpCtx, chromedpCancel, allocCancel := newChromedpContext(ctx, true)
	defer allocCancel()
	defer chromedpCancel()

	if err := chromedp.Run(chromedpCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		return page.Enable().Do(ctx)
	})); err != nil {
		log.Printf("⚠️  GeneratePDF: failed to enable page domain: %v", err)
	}

	renderURL := fmt.Sprintf("%s/admin/lookbook/render?category=%s", s.baseURL, category)

	var pdfBuf []byte

	// A4 portrait: 210mm = 794px at 96 DPI. The tall viewport lets every
	// page lay out before printing; PrintToPDF handles the page breaks.
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 5000),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2000),
		chromedp.Evaluate(waitForAssetsJS, nil),
		chromedp.Evaluate(`
			document.documentElement.style.width = '210mm';
			document.documentElement.style.height = 'auto';
			document.documentElement.style.minHeight = '297mm';
			document.body.style.width = '210mm';
			document.body.style.height = 'auto';
			document.body.style.minHeight = '297mm';
		`, nil),
		chromedp.Sleep(1000),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// 210mm x 297mm = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// GeneratePNG generates PNG images of the lookbook, one per page.
// Returns a map of page number to PNG data.
func (s *LookbookService) GeneratePNG(ctx context.Context, category string) (map[int][]byte, error) {
	items, err := s.GetLookbookItems(ctx, category)
	var expectedPages int
	if err != nil {
		expectedPages = 0
	} else {
		// Ceiling division over 6 looks per page
		expectedPages = (len(items) + 5) / 6
	}

	// PNG generation screenshots each page, so scale the timeout with the
	// expected page count instead of using a flat budget
	timeout := 30 * time.Second
	if expectedPages > 1 {
		timeout = time.Duration(20+expectedPages*10) * time.Second
		if timeout > 3*time.Minute {
			timeout = 3 * time.Minute
		}
	}
	log.Printf("📸 GeneratePNG: category=%s expectedPages=%d timeout=%s", category, expectedPages, timeout)

	ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chromedpCtx, chromedpCancel, allocCancel := newChromedpContext(ctxTimeout, false)
	defer allocCancel()
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/lookbook/render?category=%s", s.baseURL, category)

	var pageCountVal float64
	err = chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 5000),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2000),
		chromedp.Evaluate(waitForAssetsJS, nil),
		chromedp.Evaluate(`
			document.documentElement.style.width = '210mm';
			document.documentElement.style.height = 'auto';
			document.documentElement.style.minHeight = '297mm';
			document.body.style.width = '210mm';
			document.body.style.height = 'auto';
			document.body.style.minHeight = '297mm';
		`, nil),
		chromedp.Sleep(2000),
		// Scroll through the document so lazy layout settles before counting
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight);`, nil),
		chromedp.Sleep(1000),
		chromedp.Evaluate(`window.scrollTo(0, 0);`, nil),
		chromedp.Sleep(500),
		chromedp.Evaluate(`document.querySelectorAll('.page').length`, &pageCountVal),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	pageCount := int(pageCountVal)
	if pageCount == 0 {
		return nil, fmt.Errorf("no pages found in HTML")
	}
	if expectedPages > 0 && pageCount != expectedPages {
		pageCount = expectedPages
	}
	log.Printf("📄 GeneratePNG: category=%s detectedPages=%d (expected=%d)", category, pageCount, expectedPages)

	if pageCount == 1 {
		var buf []byte
		err = chromedp.Run(chromedpCtx,
			chromedp.EmulateViewport(794, 1123), // 210mm x 297mm
			chromedp.Navigate(renderURL),
			chromedp.WaitReady("body"),
			chromedp.Sleep(2000),
			chromedp.Evaluate(waitForAssetsJS, nil),
			chromedp.Evaluate(`
				document.documentElement.style.width = '210mm';
				document.documentElement.style.height = '297mm';
				document.body.style.width = '210mm';
				document.body.style.height = '297mm';
			`, nil),
			chromedp.Sleep(1000),
			chromedp.CaptureScreenshot(&buf),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to capture screenshot: %w", err)
		}
		return map[int][]byte{1: buf}, nil
	}

	pngs := make(map[int][]byte)
	missingPages := make([]int, 0)
	const maxAttemptsPerPage = 2

	restoreAllPages := func() {
		_ = chromedp.Run(chromedpCtx,
			chromedp.Evaluate(`
				(function() {
					const pages = document.querySelectorAll('.page');
					pages.forEach(page => {
						page.style.display = 'flex';
						page.style.visibility = 'visible';
					});
					document.documentElement.style.height = 'auto';
					document.documentElement.style.overflow = '';
					document.body.style.height = 'auto';
					document.body.style.overflow = '';
				})();
			`, nil),
		)
	}

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		var buf []byte
		var lastErr error

		for attempt := 1; attempt <= maxAttemptsPerPage; attempt++ {
			buf = nil
			lastErr = chromedp.Run(chromedpCtx,
				chromedp.EmulateViewport(794, 1123),
				// Hide every page except the current one and pin the body
				// to a single page height
				chromedp.Evaluate(fmt.Sprintf(`
					(function() {
						const pages = document.querySelectorAll('.page');
						if (pages.length === 0) {
							return 0;
						}
						pages.forEach((page, index) => {
							if (index === %d - 1) {
								page.style.display = 'flex';
								page.style.visibility = 'visible';
								page.style.position = 'relative';
							} else {
								page.style.display = 'none';
								page.style.visibility = 'hidden';
							}
						});
						document.documentElement.style.width = '210mm';
						document.documentElement.style.height = '297mm';
						document.documentElement.style.overflow = 'hidden';
						document.body.style.width = '210mm';
						document.body.style.height = '297mm';
						document.body.style.overflow = 'hidden';
						return pages.length;
					})();
				`, pageNum), nil),
				chromedp.Sleep(900),
				chromedp.CaptureScreenshot(&buf),
			)

			if lastErr == nil && len(buf) > 0 {
				break
			}

			log.Printf("⚠️ GeneratePNG: failed page=%d attempt=%d/%d err=%v buf=%d", pageNum, attempt, maxAttemptsPerPage, lastErr, len(buf))
			restoreAllPages()
			time.Sleep(400 * time.Millisecond)
		}

		if lastErr != nil || len(buf) == 0 {
			missingPages = append(missingPages, pageNum)
			restoreAllPages()
			continue
		}

		pngs[pageNum] = buf

		if pageNum < pageCount {
			restoreAllPages()
		}
	}

	if len(pngs) == 0 {
		return nil, fmt.Errorf("failed to capture any pages")
	}
	if len(missingPages) > 0 {
		return nil, fmt.Errorf("failed to capture all pages: missing=%v captured=%d/%d", missingPages, len(pngs), pageCount)
	}

	return pngs, nil
}
