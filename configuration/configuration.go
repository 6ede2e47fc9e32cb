package configuration

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds everything read from the environment at process start.
type Config struct {
	DatabaseDSN       string
	RazorpayKeyID     string
	RazorpayKeySecret string
	RedisAddr         string
}

// Load reads .env and collects the settings. Missing Razorpay credentials
// are fatal; the service cannot create orders or verify callbacks without
// them.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := Config{
		DatabaseDSN:       os.Getenv("DB"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_SECRET"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
	}
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		log.Fatal("RAZORPAY_KEY_ID and RAZORPAY_SECRET must be set")
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	return cfg
}

// ConfigDB opens the postgres connection.
func ConfigDB(cfg Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to the database")
	}
	return db
}
