package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ptpal/internal/app"
	"ptpal/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	dbPath := flag.String("db", "", "Path to SQLite database (overrides config)")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	fmt.Println("PT Pal - Pose Assessment Service")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	if cfg.Database.Path == "" {
		path, err := defaultDBPath()
		if err != nil {
			log.Fatalf("Failed to resolve data directory: %v", err)
		}
		cfg.Database.Path = path
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}
	defer application.Close()

	fmt.Printf("Database: %s\n", cfg.Database.Path)
	fmt.Printf("Starting server on :%d\n", cfg.Server.Port)
	if err := application.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// defaultDBPath creates the data directory under the user's home and
// returns the database path inside it.
func defaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(homeDir, ".ptpal")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(dataDir, "ptpal.db"), nil
}
