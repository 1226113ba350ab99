package main

import (
	"flag"
	"log"
	"os"

	"ecommerce-orders-lab/internal/data"
	"ecommerce-orders-lab/internal/validate"
)

func main() {
	var (
		input  = flag.String("input", "ecommerce_orders_demo.csv", "order table to validate and clean")
		output = flag.String("output", "ecommerce_orders_clean.csv", "destination for the cleaned table")
	)
	flag.Parse()

	table, err := data.ReadTableFile(*input)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *input, err)
	}
	log.Printf("loaded %d orders from %s", len(table), *input)

	issues := validate.Validate(table)
	if err := validate.WriteReport(os.Stdout, issues); err != nil {
		log.Fatalf("failed to render report: %v", err)
	}

	clean, removed := validate.Clean(table)
	if err := data.WriteTableFile(*output, clean); err != nil {
		log.Fatalf("failed to write %s: %v", *output, err)
	}

	log.Printf("cleaned dataset saved to %s", *output)
	log.Printf("removed %d problematic records", removed)
}
