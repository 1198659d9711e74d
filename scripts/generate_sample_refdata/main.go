package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"storefront/internal/refdata"
)

// Writes the built-in reference dataset to a JSON file so deployments can
// use it as a starting point for a file or S3 override.
func main() {
	dataDir := "data/refdata"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	set := refdata.Default()

	filePath := filepath.Join(dataDir, "locations.json")
	file, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(set); err != nil {
		log.Fatalf("Failed to write reference data: %v", err)
	}

	fmt.Printf("Created %s with %d locations and %d category styles\n",
		filePath, len(set.Locations), len(set.CategoryStyles))
	fmt.Println("\nEdit the file and point REFDATA_FILE at it, or upload it to")
	fmt.Println("S3 and set REFDATA_S3_ENABLED/REFDATA_S3_BUCKET/REFDATA_S3_KEY.")
}
