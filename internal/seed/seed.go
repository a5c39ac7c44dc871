package seed

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Product is the seed-file shape of a catalog product, tags inlined.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Rating      float64  `json:"rating"`
	InStock     bool     `json:"inStock"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

// Order is the seed-file shape of an order with its items nested.
type Order struct {
	OrderID    string      `json:"orderId"`
	Date       string      `json:"date"`
	CustomerID string      `json:"customerId"`
	Total      float64     `json:"total"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// LoadProducts reads a JSON array of products from disk.
func LoadProducts(path string) ([]Product, error) {
	var products []Product
	if err := loadJSON(path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// LoadOrders reads a JSON array of orders from disk.
func LoadOrders(path string) ([]Order, error) {
	var orders []Order
	if err := loadJSON(path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Apply replaces the catalog content with the provided products and orders in
// a single transaction. Any failure rolls the whole load back, so the catalog
// is never left half-seeded.
func Apply(db *sql.DB, products []Product, orders []Order, log *logrus.Logger) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// children first, to satisfy the foreign keys
	for _, table := range []string{"order_items", "orders", "product_tags", "products"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	log.Infof("seeding %d products", len(products))
	for _, p := range products {
		if _, err := tx.Exec(
			`INSERT INTO products (id, name, description, price, category, brand, rating, in_stock, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			p.ID, p.Name, p.Description, p.Price, p.Category, p.Brand, p.Rating, boolToInt(p.InStock), p.ImageURL,
		); err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
		for _, tag := range p.Tags {
			if _, err := tx.Exec(
				`INSERT INTO product_tags (product_id, tag) VALUES ($1, $2)`,
				p.ID, tag,
			); err != nil {
				return fmt.Errorf("insert tag for product %s: %w", p.ID, err)
			}
		}
	}

	log.Infof("seeding %d orders", len(orders))
	for _, o := range orders {
		if _, err := tx.Exec(
			`INSERT INTO orders (order_id, date, customer_id, total) VALUES ($1, $2, $3, $4)`,
			o.OrderID, o.Date, o.CustomerID, o.Total,
		); err != nil {
			return fmt.Errorf("insert order %s: %w", o.OrderID, err)
		}
		for _, item := range o.Items {
			if _, err := tx.Exec(
				`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)`,
				o.OrderID, item.ProductID, item.Quantity, item.Price,
			); err != nil {
				return fmt.Errorf("insert item for order %s: %w", o.OrderID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	log.Info("seeding completed")
	return nil
}

// in_stock is persisted as 0/1
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
