package catalog

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// listQueryHead projects the product columns plus the two derived fields.
// Order items are pre-aggregated in a subquery (one row per product) and the
// tag aggregation deduplicates, so joining both one-to-many relations in the
// same statement cannot inflate either the tag list or the purchase count.
const listQueryHead = `
	SELECT p.id, p.name, p.description, p.price, p.category, p.brand, p.rating, p.in_stock, p.image_url,
		COALESCE(string_agg(DISTINCT pt.tag, ','), '') AS tags,
		COALESCE(sold.units, 0) AS purchase_count
	FROM products p
	LEFT JOIN product_tags pt ON pt.product_id = p.id
	LEFT JOIN (
		SELECT product_id, SUM(quantity) AS units
		FROM order_items
		GROUP BY product_id
	) sold ON sold.product_id = p.id`

// buildListQuery turns a Query into a single SQL statement plus bind args.
// Each filter is independently optional; present filters are combined with
// AND, and list-valued filters match any of their values.
func buildListQuery(q Query) (string, []any) {
	var b strings.Builder
	b.WriteString(listQueryHead)

	var conds []string
	var args []any

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}
	if len(q.Categories) > 0 {
		args = append(args, pq.Array(q.Categories))
		conds = append(conds, fmt.Sprintf("p.category = ANY($%d::text[])", len(args)))
	}
	if len(q.Brands) > 0 {
		args = append(args, pq.Array(q.Brands))
		conds = append(conds, fmt.Sprintf("p.brand = ANY($%d::text[])", len(args)))
	}
	if q.MinPrice != nil {
		args = append(args, *q.MinPrice)
		conds = append(conds, fmt.Sprintf("p.price >= $%d", len(args)))
	}
	if q.MaxPrice != nil {
		args = append(args, *q.MaxPrice)
		conds = append(conds, fmt.Sprintf("p.price <= $%d", len(args)))
	}

	if len(conds) > 0 {
		b.WriteString("\n\tWHERE " + strings.Join(conds, " AND "))
	}

	b.WriteString("\n\tGROUP BY p.id, sold.units")

	switch q.Sort {
	case SortPriceAsc:
		b.WriteString("\n\tORDER BY p.price ASC")
	case SortPriceDesc:
		b.WriteString("\n\tORDER BY p.price DESC")
	case SortRating:
		b.WriteString("\n\tORDER BY p.rating DESC")
	case SortPopular:
		b.WriteString("\n\tORDER BY purchase_count DESC")
	}

	return b.String(), args
}
