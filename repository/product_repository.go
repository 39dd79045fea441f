package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"adire-boutique/db"
	"adire-boutique/models"
)

// ProductRepository handles database operations for the product catalogue
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `id, name, category, fabric, description, price, sizes, images, is_active, created_at, updated_at`

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	log.Printf("📦 CreateProduct: name=%s, category=%s, price=%d", req.Name, req.Category, req.Price)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("category cannot be empty")
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than 0")
	}

	sizesJSON, err := json.Marshal(req.Sizes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sizes: %w", err)
	}
	imagesJSON, err := json.Marshal(req.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}

	query := `
		INSERT INTO products (id, name, category, fabric, description, price, sizes, images, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
		RETURNING ` + productColumns

	row := db.DB.QueryRowContext(ctx, query,
		uuid.NewString(),
		req.Name,
		strings.ToLower(strings.TrimSpace(req.Category)),
		strings.ToLower(strings.TrimSpace(req.Fabric)),
		sql.NullString{String: req.Description, Valid: req.Description != ""},
		req.Price,
		string(sizesJSON),
		string(imagesJSON),
	)

	product, err := scanProduct(row)
	if err != nil {
		log.Printf("❌ CreateProduct: Error creating product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✅ CreateProduct: Successfully created product id=%s", product.ID)
	return product, nil
}

// GetByID fetches a single product by id
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return product, nil
}

// Filter lists products matching the given filter
func (r *ProductRepository) Filter(ctx context.Context, filter *models.ProductFilter) ([]models.Product, error) {
	log.Printf("🔍 FilterProducts: category=%s, fabric=%s, minPrice=%d, maxPrice=%d",
		filter.Category, filter.Fabric, filter.MinPrice, filter.MaxPrice)

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	argIdx := 1

	if filter.OnlyActive {
		query += ` AND is_active = true`
	}
	if filter.Category != "" {
		query += fmt.Sprintf(` AND category = $%d`, argIdx)
		args = append(args, strings.ToLower(filter.Category))
		argIdx++
	}
	if filter.Fabric != "" {
		query += fmt.Sprintf(` AND fabric = $%d`, argIdx)
		args = append(args, strings.ToLower(filter.Fabric))
		argIdx++
	}
	if filter.MinPrice > 0 {
		query += fmt.Sprintf(` AND price >= $%d`, argIdx)
		args = append(args, filter.MinPrice)
		argIdx++
	}
	if filter.MaxPrice > 0 {
		query += fmt.Sprintf(` AND price <= $%d`, argIdx)
		args = append(args, filter.MaxPrice)
		argIdx++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(` AND name ILIKE $%d`, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ FilterProducts: Query failed: %v", err)
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

// Update applies a partial update to a product
func (r *ProductRepository) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	log.Printf("📦 UpdateProduct: id=%s", id)

	sets := []string{`updated_at = now()`}
	args := []any{}
	argIdx := 1

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.Category != nil {
		appendSet("category", strings.ToLower(strings.TrimSpace(*req.Category)))
	}
	if req.Fabric != nil {
		appendSet("fabric", strings.ToLower(strings.TrimSpace(*req.Fabric)))
	}
	if req.Description != nil {
		appendSet("description", *req.Description)
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("price must be greater than 0")
		}
		appendSet("price", *req.Price)
	}
	if req.Sizes != nil {
		sizesJSON, err := json.Marshal(*req.Sizes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode sizes: %w", err)
		}
		appendSet("sizes", string(sizesJSON))
	}
	if req.Images != nil {
		imagesJSON, err := json.Marshal(*req.Images)
		if err != nil {
			return nil, fmt.Errorf("failed to encode images: %w", err)
		}
		appendSet("images", string(imagesJSON))
	}
	if req.IsActive != nil {
		appendSet("is_active", *req.IsActive)
	}

	if len(sets) == 1 {
		return nil, fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argIdx, productColumns)
	args = append(args, id)

	product, err := scanProduct(db.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		log.Printf("❌ UpdateProduct: Error updating product: %v", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	log.Printf("✅ UpdateProduct: Successfully updated product id=%s", product.ID)
	return product, nil
}

// Deactivate hides a product from the storefront without deleting it
func (r *ProductRepository) Deactivate(ctx context.Context, id string) error {
	result, err := db.DB.ExecContext(ctx, `UPDATE products SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivation result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product not found")
	}
	log.Printf("✅ DeactivateProduct: id=%s", id)
	return nil
}

// AttachImage appends an image URL to every product carrying the given
// style code in its name. Used by the Drive sync when importing imagery.
func (r *ProductRepository) AttachImage(ctx context.Context, styleCode string, imageURL string) error {
	query := `
		UPDATE products
		SET images = images || to_jsonb($1::text), updated_at = now()
		WHERE name ILIKE $2 AND NOT images @> to_jsonb($1::text)
	`
	if _, err := db.DB.ExecContext(ctx, query, imageURL, "%"+styleCode+"%"); err != nil {
		return fmt.Errorf("failed to attach image: %w", err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	var description sql.NullString
	var sizesJSON, imagesJSON []byte

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Fabric,
		&description,
		&product.Price,
		&sizesJSON,
		&imagesJSON,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		product.Description = description.String
	}
	if len(sizesJSON) > 0 {
		if err := json.Unmarshal(sizesJSON, &product.Sizes); err != nil {
			return nil, fmt.Errorf("failed to decode sizes: %w", err)
		}
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &product.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
	}
	return &product, nil
}
