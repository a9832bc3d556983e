package catalog

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens (or creates) the sqlite catalog and seeds demo data on
// first run.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	if err := SeedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func EnsureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name_key TEXT NOT NULL,
  icon TEXT,
  description TEXT
);

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL REFERENCES categories(id),
  price INTEGER NOT NULL CHECK (price >= 0),
  original_price INTEGER NOT NULL DEFAULT 0,
  rating REAL NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 5),
  reviews INTEGER NOT NULL DEFAULT 0 CHECK (reviews >= 0),
  in_stock INTEGER NOT NULL DEFAULT 1,
  brand TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(LOWER(name));
`
	_, err := db.Exec(schema)
	return err
}

// SeedIfEmpty inserts the demo catalog when the tables are bare. Safe to
// call on every start.
func SeedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories and products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id, name_key, icon, description) VALUES
	  ('groceries','categories.groceries','🛒','Daily essentials, staples and fresh produce'),
	  ('electronics','categories.electronics','📱','Phones, audio and appliances'),
	  ('fashion','categories.fashion','👕','Clothing and footwear for the family'),
	  ('home','categories.home','🏠','Kitchen, decor and furnishing'),
	  ('beauty','categories.beauty','💄','Personal care and wellness')`)

	tx.MustExec(`INSERT INTO products(id, name, category, price, original_price, rating, reviews, in_stock, brand, image, description) VALUES
	  (1,'Basmati Rice 5kg','groceries',499,599,4.5,234,1,'India Gate','/images/products/basmati-rice.jpg','Premium aged basmati rice, extra long grain'),
	  (2,'Toor Dal 1kg','groceries',189,0,4.3,156,1,'Tata Sampann','/images/products/toor-dal.jpg','Unpolished toor dal rich in protein'),
	  (3,'Sunflower Oil 1L','groceries',165,185,4.1,98,0,'Fortune','/images/products/sunflower-oil.jpg','Refined sunflower oil, light and healthy'),
	  (4,'Wireless Earbuds','electronics',1999,2999,4.4,1205,1,'boAt','/images/products/earbuds.jpg','Bluetooth 5.3 earbuds with 30h playback'),
	  (5,'Smart LED TV 43"','electronics',16999,21999,4.6,876,1,'Mi','/images/products/led-tv.jpg','4K Ultra HD smart TV with built-in speakers'),
	  (6,'Mixer Grinder 750W','electronics',3499,4299,4.2,445,1,'Preethi','/images/products/mixer-grinder.jpg','3-jar mixer grinder for Indian kitchens'),
	  (7,'Cotton Kurta','fashion',799,1199,4.0,321,1,'FabIndia','/images/products/cotton-kurta.jpg','Handblock printed cotton kurta'),
	  (8,'Running Shoes','fashion',2499,3999,4.5,1567,1,'Campus','/images/products/running-shoes.jpg','Lightweight running shoes with memory foam'),
	  (9,'Silk Saree','fashion',4999,7999,4.7,289,0,'Pothys','/images/products/silk-saree.jpg','Kanchipuram silk saree with zari border'),
	  (10,'Pressure Cooker 5L','home',1899,2499,4.6,2034,1,'Prestige','/images/products/pressure-cooker.jpg','Stainless steel pressure cooker'),
	  (11,'Bed Sheet Set','home',999,1499,4.1,412,1,'Bombay Dyeing','/images/products/bed-sheet.jpg','King size cotton bed sheet with 2 pillow covers'),
	  (12,'Face Wash 150ml','beauty',249,299,4.2,789,1,'Himalaya','/images/products/face-wash.jpg','Neem and turmeric face wash')`)

	return tx.Commit()
}
