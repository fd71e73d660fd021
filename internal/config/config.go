package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	Scraper  ScraperConfig
}

type ServerConfig struct {
	Port            string
	AllowedOrigins  string
	AllowCredential string
}

type AuthConfig struct {
	JWTSecret     string
	JWTAccessTTL  string
	JWTRefreshTTL string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type ScraperConfig struct {
	BaseURL string
	Pages   string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:            getenv("PORT", "8080"),
			AllowedOrigins:  os.Getenv("CORS_ALLOWED_ORIGINS"),
			AllowCredential: getenv("CORS_ALLOW_CREDENTIALS", "false"),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			JWTAccessTTL:  getenv("JWT_ACCESS_TTL", "30m"),
			JWTRefreshTTL: getenv("JWT_REFRESH_TTL", "168h"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Scraper: ScraperConfig{
			BaseURL: getenv("QUOTE_SCRAPER_URL", "https://saramro.com/quotes"),
			Pages:   getenv("QUOTE_SCRAPER_PAGES", "5"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
