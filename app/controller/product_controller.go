package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"adire-boutique/models"
	"adire-boutique/repository"
)

// ProductController handles HTTP requests for the product catalogue
type ProductController struct {
	repository repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface) *ProductController {
	return &ProductController{
		repository: repo,
	}
}

// CreateProduct handles POST /admin/products
func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		http.Error(w, "category cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Price <= 0 {
		http.Error(w, "price must be greater than 0", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	product, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateProduct: Error creating product: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreateProduct: Successfully created product id=%s name=%s", product.ID, product.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(product); err != nil {
		log.Printf("❌ CreateProduct: Error encoding response: %v", err)
	}
}

// FilterProducts handles GET /products
// Supports query params: category, fabric, min_price, max_price, search, include_inactive
func (c *ProductController) FilterProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 FilterProducts: Received %s request to %s", r.Method, r.URL.String())

	query := r.URL.Query()
	filter := &models.ProductFilter{
		Category:   query.Get("category"),
		Fabric:     query.Get("fabric"),
		Search:     query.Get("search"),
		OnlyActive: query.Get("include_inactive") != "true",
	}
	if v := query.Get("min_price"); v != "" {
		minPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "min_price must be a number", http.StatusBadRequest)
			return
		}
		filter.MinPrice = minPrice
	}
	if v := query.Get("max_price"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "max_price must be a number", http.StatusBadRequest)
			return
		}
		filter.MaxPrice = maxPrice
	}

	ctx := context.Background()
	products, err := c.repository.Filter(ctx, filter)
	if err != nil {
		log.Printf("❌ FilterProducts: Error filtering products: %v", err)
		http.Error(w, fmt.Sprintf("Failed to filter products: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ FilterProducts: Found %d products", len(products))

	response := models.ProductListResponse{
		Products: products,
		Total:    len(products),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ FilterProducts: Error encoding response: %v", err)
	}
}

// GetProduct handles GET /products/{id}
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/products/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	log.Printf("📥 GetProduct: id=%s", id)

	ctx := context.Background()
	product, err := c.repository.GetByID(ctx, id)
	if err != nil {
		log.Printf("❌ GetProduct: Error fetching product: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Product not found: %s", id), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(product); err != nil {
		log.Printf("❌ GetProduct: Error encoding response: %v", err)
	}
}

// UpdateProduct handles PUT /admin/products/{id}
func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	log.Printf("📥 UpdateProduct: id=%s", id)

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	product, err := c.repository.Update(ctx, id, &req)
	if err != nil {
		log.Printf("❌ UpdateProduct: Error updating product: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Product not found: %s", id), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update product: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateProduct: Successfully updated product id=%s", product.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(product); err != nil {
		log.Printf("❌ UpdateProduct: Error encoding response: %v", err)
	}
}

// DeactivateProduct handles DELETE /admin/products/{id}
// Products are never hard-deleted; deactivation hides them from the storefront
func (c *ProductController) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	log.Printf("📥 DeactivateProduct: id=%s", id)

	ctx := context.Background()
	if err := c.repository.Deactivate(ctx, id); err != nil {
		log.Printf("❌ DeactivateProduct: Error deactivating product: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, fmt.Sprintf("Product not found: %s", id), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to deactivate product: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeactivateProduct: Successfully deactivated product id=%s", id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"deactivated"}`))
}
