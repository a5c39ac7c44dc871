package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"catalog-backend/internal/config"
	"catalog-backend/internal/seed"
	"catalog-backend/internal/storage"
)

// main bulk-loads the catalog from JSON data files in one transaction.
func main() {
	log := logrus.New()

	productsPath := pflag.StringP("products", "p", "data/products.json", "path to products JSON file")
	ordersPath := pflag.StringP("orders", "o", "data/orders.json", "path to orders JSON file")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := storage.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := storage.Migrate(db, log); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	products, err := seed.LoadProducts(*productsPath)
	if err != nil {
		log.Fatalf("load products: %v", err)
	}
	orders, err := seed.LoadOrders(*ordersPath)
	if err != nil {
		log.Fatalf("load orders: %v", err)
	}

	if err := seed.Apply(db, products, orders, log); err != nil {
		log.Fatalf("seed: %v", err)
	}
}
