package dto

import "time"

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
