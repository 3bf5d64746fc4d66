package config

import "os"

// EnvTest switches the store to an in-memory database and unlocks the
// test-only reset operation.
const EnvTest = "test"

type Config struct {
	ListenAddr  string // ex: ":3030"
	DBPath      string // path to the sqlite file
	FrontendURL string // origin granted access by CORS
	Env         string // "" | "development" | "production" | "test"
}

func Load() *Config {
	return &Config{
		ListenAddr:  getenv("BOOKMARK_LISTEN_ADDR", ":3030"),
		DBPath:      getenv("BOOKMARK_DB_PATH", "bookmarks.sqlite"),
		FrontendURL: getenv("BOOKMARK_PAGE_FRONTEND_URL", "http://localhost:5173"),
		Env:         os.Getenv("GO_ENV"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
