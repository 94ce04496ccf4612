// Command seed loads the product catalog from a JSON seed file into the
// products collection. Existing data is never overwritten.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"koffiehuis-be/internal/config"
	"koffiehuis-be/internal/product"
	"koffiehuis-be/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	seedFile := flag.String("seed", "data/products-seed.json", "path to the product seed file")
	flag.Parse()

	cfg := config.LoadConfig()

	if err := run(cfg.DataDir, *seedFile); err != nil {
		log.Fatal(err)
	}
}

func run(dataDir, seedFile string) error {
	col := store.NewCollection[product.Product](dataDir, "products")
	if err := col.EnsureExists(nil); err != nil {
		return err
	}

	existing, err := col.ReadAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Printf("database already contains %d products, skipping seed\n", len(existing))
		return nil
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var products []product.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	if err := col.WriteAll(products); err != nil {
		return err
	}

	fmt.Printf("seeded %d products\n", len(products))
	for _, p := range products {
		fmt.Printf("  - %s (EUR %s)\n", p.Name, p.Price.StringFixed(2))
	}
	return nil
}
