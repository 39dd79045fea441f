package service

import (
	"context"

	"adire-boutique/models"
)

// LookbookServiceInterface defines the contract for lookbook generation
type LookbookServiceInterface interface {
	GetLookbookItems(ctx context.Context, category string) ([]models.LookbookItem, error)
	RenderLookbookHTML(ctx context.Context, category string, useBase64 bool) (string, error)
	GeneratePDF(ctx context.Context, category string) ([]byte, error)
	GeneratePNG(ctx context.Context, category string) (map[int][]byte, error)
}
