package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

var listColumns = []string{
	"id", "name", "description", "price", "category", "brand", "rating",
	"in_stock", "image_url", "tags", "purchase_count",
}

func TestPostgresList_MapsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(listColumns).
		AddRow("p1", "Headphones", "Wireless over-ear", 299.0, "Electronics", "Bose", 4.8, 1, "/img/p1.jpg", "audio,wireless", 12).
		AddRow("p2", "Water Bottle", "Insulated", 25.0, "Outdoors", "Hydro", 4.9, 0, "/img/p2.jpg", "", 0)
	mock.ExpectQuery("FROM products p").WillReturnRows(rows)

	items, err := repo.List(Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if !first.InStock {
		t.Errorf("in_stock=1 must map to true")
	}
	if !reflect.DeepEqual(first.Tags, []string{"audio", "wireless"}) {
		t.Errorf("unexpected tags: %v", first.Tags)
	}
	if first.PurchaseCount != 12 {
		t.Errorf("unexpected purchase count: %d", first.PurchaseCount)
	}

	second := items[1]
	if second.InStock {
		t.Errorf("in_stock=0 must map to false")
	}
	if len(second.Tags) != 0 {
		t.Errorf("empty tag storage must map to an empty list, got %v", second.Tags)
	}
	if second.PurchaseCount != 0 {
		t.Errorf("no orders must map to purchase count 0, got %d", second.PurchaseCount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresList_BindsFilterArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products p").
		WithArgs(pq.Array([]string{"Electronics"}), 0.0, 50.0).
		WillReturnRows(sqlmock.NewRows(listColumns))

	items, err := repo.List(Query{
		Categories: []string{"Electronics"},
		MinPrice:   floatPtr(0),
		MaxPrice:   floatPtr(50),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(items))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresList_QueryErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	queryErr := errors.New("connection lost")
	mock.ExpectQuery("FROM products p").WillReturnError(queryErr)

	if _, err := repo.List(Query{}); !errors.Is(err, queryErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresFilterOptions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT DISTINCT category").
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Books").AddRow("Electronics"))
	mock.ExpectQuery("SELECT DISTINCT brand").
		WillReturnRows(sqlmock.NewRows([]string{"brand"}).AddRow("Adidas").AddRow("Bose"))

	opts, err := repo.FilterOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(opts.Categories, []string{"Books", "Electronics"}) {
		t.Errorf("unexpected categories: %v", opts.Categories)
	}
	if !reflect.DeepEqual(opts.Brands, []string{"Adidas", "Bose"}) {
		t.Errorf("unexpected brands: %v", opts.Brands)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresFilterOptions_ErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	queryErr := errors.New("connection lost")
	mock.ExpectQuery("SELECT DISTINCT category").WillReturnError(queryErr)

	if _, err := repo.FilterOptions(); !errors.Is(err, queryErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
