package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB
}

var AppConfig *Config

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the PostgreSQL connection pool and verifies it.
// The initial connection is retried up to 3 times with exponential backoff;
// nothing else in the application retries.
func InitDB() {
	host := envOr("DB_HOST", "localhost")
	port, err := strconv.Atoi(envOr("DB_PORT", "5432"))
	if err != nil {
		log.Fatal("Invalid DB_PORT:", err)
	}
	user := envOr("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := envOr("DB_NAME", "rakeen")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable connect_timeout=30",
		host, port, user, dbname)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// The pool is the only shared mutable resource in the process.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	log.Printf("Connecting to database %s at %s:%d...", dbname, host, port)
	backoff := time.Second
	for attempt := 1; ; attempt++ {
		err = db.Ping()
		if err == nil {
			break
		}
		if attempt >= 3 {
			log.Fatalf("Database connection failed after %d attempts: %v", attempt, err)
		}
		log.Printf("Database connection failed (attempt %d): %v, retrying in %s", attempt, err, backoff)
		time.Sleep(backoff)
		backoff *= 2
	}
	log.Println("Database connection established")

	AppConfig = &Config{DB: db}
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
