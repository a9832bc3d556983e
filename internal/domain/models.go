package domain

// Product is a catalog entry. The catalog is read-only for this core:
// products are never created, updated, or deleted by the client.
type Product struct {
	ID            int     `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Category      string  `db:"category" json:"category"`
	Price         int64   `db:"price" json:"price"` // whole rupees
	OriginalPrice int64   `db:"original_price" json:"originalPrice,omitempty"`
	Rating        float64 `db:"rating" json:"rating"` // 0.0 - 5.0
	Reviews       int     `db:"reviews" json:"reviews"`
	InStock       bool    `db:"in_stock" json:"inStock"`
	Brand         string  `db:"brand" json:"brand,omitempty"`
	Image         string  `db:"image" json:"image"`
	Description   string  `db:"description" json:"description"`
}

type Category struct {
	ID          string `db:"id" json:"id"`
	NameKey     string `db:"name_key" json:"nameKey"`
	Icon        string `db:"icon" json:"icon"`
	Description string `db:"description" json:"description"`
}
