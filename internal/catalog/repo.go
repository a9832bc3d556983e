// Package catalog is the catalog data source: a flat set of products
// and categories loaded once at startup. No pagination, no incremental
// loading.
package catalog

import (
	"github.com/jmoiron/sqlx"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/domain"
)

type Repo struct{ db *sqlx.DB }

func NewRepo(db *sqlx.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Products() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, name, category, price, original_price, rating, reviews,
	         in_stock, brand, image, description
	  FROM products ORDER BY id`)
	return out, err
}

func (r *Repo) Categories() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `SELECT id, name_key, icon, description FROM categories ORDER BY id`)
	return out, err
}
