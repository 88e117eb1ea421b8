package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBDriver string
	DBName   string
	JWTKey   string

	EmailSender    string
	Password       string // SMTP Password
	SendgridApiKey string

	RazorpayApiURL    string
	RazorpayKeyID     string
	RazorpayKeySecret string
	PaymentTimeoutSec int

	ReceiptDir string
	UploadDir  string

	OrgName  string
	OrgPan   string
	Org80G   string
	OrgEmail string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:     getEnv("PORT", "3000"),
		DBDriver: getEnv("DB_DRIVER", "postgres"),
		DBName:   getEnv("DB_NAME", "supansha"),
		JWTKey:   getEnv("JWT_SECRET_KEY", "defaultSecret"),

		EmailSender:    getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:       getEnv("PASSWORD", "defaultSecret"),
		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),

		RazorpayApiURL:    getEnv("RAZORPAY_API_URL", "https://api.razorpay.com/v1/"),
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		PaymentTimeoutSec: getEnvInt("PAYMENT_TIMEOUT_SEC", 15),

		ReceiptDir: getEnv("RECEIPT_DIR", "uploads/receipts"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads/documents"),

		OrgName:  getEnv("ORG_NAME", "Supansha Development Foundation"),
		OrgPan:   getEnv("ORG_PAN", "AAASD1234F"),
		Org80G:   getEnv("ORG_80G", "80G/1234/2023-24"),
		OrgEmail: getEnv("ORG_EMAIL", "donations@supansha.org"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.RazorpayKeyID == "" {
		log.Println("Warning: RAZORPAY_KEY_ID not set. Payments will run in simulated mode.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
