package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	Environment string
	AppId       string
	APIBaseURL  string   // Base URL report views use to reach the API, including the /api prefix
	LogFile     string   // Rotating log file path, empty disables the file sink
	LogToDB     bool     // Mirror log entries into the logs collection
	CatalogPath string   // YAML option catalog, empty uses the embedded default
	CORSOrigins []string // Allowed browser origins
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "apre"),
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "apre-reports"),
		APIBaseURL:  strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080/api"), "/"),
		LogFile:     getEnv("LOG_FILE", ""),
		LogToDB:     getEnv("LOG_TO_DB", "false") == "true",
		CatalogPath: getEnv("CATALOG_PATH", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:4200, http://localhost:3000")),
	}, nil
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
