package dto

// ProductResponse represents a catalog product.
type ProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
