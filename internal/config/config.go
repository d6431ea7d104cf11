package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the input file locations and console options.
type Config struct {
	MarkupPath    string
	DelimitedPath string
	ShapefilePath string
	NoColor       bool
}

// Defaults are relative to the working directory, next to the other data
// files.
var (
	DefaultMarkupPath    = filepath.Join("data", "address.xml")
	DefaultDelimitedPath = filepath.Join("data", "address.csv")
	DefaultShapefilePath = filepath.Join("data", "address.shp")
)

// Load reads configuration from the environment. Variables in envFile are
// applied first without overriding ones already set; a missing envFile is
// not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	return Config{
		MarkupPath:    getEnvOrDefault("ADDRSTATS_XML_FILE", DefaultMarkupPath),
		DelimitedPath: getEnvOrDefault("ADDRSTATS_CSV_FILE", DefaultDelimitedPath),
		ShapefilePath: getEnvOrDefault("ADDRSTATS_SHP_FILE", DefaultShapefilePath),
		NoColor:       os.Getenv("NO_COLOR") != "",
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
