package catalog

import (
	"database/sql"
	"fmt"
	"strings"
)

// PostgresRepository implements Repository on top of the normalized
// products / product_tags / orders / order_items schema.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List runs the composed catalog query and maps each raw row into a Product.
// Storage errors are returned to the caller as-is; the catalog performs no
// retries. Zero matching rows is a normal outcome, not an error.
func (r *PostgresRepository) List(q Query) ([]Product, error) {
	query, args := buildListQuery(q)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

// FilterOptions returns the distinct category and brand values across the
// whole catalog, each sorted ascending.
func (r *PostgresRepository) FilterOptions() (FilterOptions, error) {
	categories, err := r.distinctColumn("category")
	if err != nil {
		return FilterOptions{}, err
	}
	brands, err := r.distinctColumn("brand")
	if err != nil {
		return FilterOptions{}, err
	}
	return FilterOptions{Categories: categories, Brands: brands}, nil
}

func (r *PostgresRepository) distinctColumn(column string) ([]string, error) {
	// column is one of the two fixed identifiers below, never user input
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM products ORDER BY %s`, column, column)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", column, err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProductRow converts one flattened row into a typed Product:
// in_stock arrives as 0/1, tags as a comma-joined string ("" when the product
// has no tags) and purchase_count is COALESCEd to 0 by the query.
func scanProductRow(scanner rowScanner) (Product, error) {
	var (
		p             Product
		inStock       int
		tags          string
		purchaseCount int64
	)
	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.Brand,
		&p.Rating,
		&inStock,
		&p.ImageURL,
		&tags,
		&purchaseCount,
	); err != nil {
		return Product{}, err
	}

	p.InStock = inStock != 0
	p.Tags = splitTags(tags)
	p.PurchaseCount = int(purchaseCount)
	return p, nil
}

// splitTags reconstructs the tag list from its comma-joined storage form.
// An empty string maps to an empty list, never to [""].
func splitTags(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
