package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Expiry alert thresholds, in days remaining
	AlertCriticalDays string `yaml:"ALERT_CRITICAL_DAYS"`
	AlertWarningDays  string `yaml:"ALERT_WARNING_DAYS"`
	AlertNormalDays   string `yaml:"ALERT_NORMAL_DAYS"`

	// Scheduler configuration
	ScanIntervalHours string   `yaml:"SCAN_INTERVAL_HOURS"`
	DailyCheckTimes   []string `yaml:"DAILY_CHECK_TIMES"`

	// Notification channels
	NotifyDesktop bool   `yaml:"NOTIFY_DESKTOP"`
	NotifyEmail   bool   `yaml:"NOTIFY_EMAIL"`
	NotifySMS     bool   `yaml:"NOTIFY_SMS"`
	AlertEmailTo  string `yaml:"ALERT_EMAIL_TO"`
	AlertSMSTo    string `yaml:"ALERT_SMS_TO"`

	// Recipe generation
	MaxRecipeIngredients string `yaml:"MAX_RECIPE_INGREDIENTS"`

	// Image detection
	DetectionConfidence string `yaml:"DETECTION_CONFIDENCE"`

	// Default shelf life per category, in days, used when an item has no
	// expiry date
	DefaultShelfLife map[string]int `yaml:"DEFAULT_SHELF_LIFE"`

	// Server configuration
	AppPort string `yaml:"APP_PORT"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS configuration (S3 for images, SNS for SMS alerts)
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSRegion    string `yaml:"AWS_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_REGION", config.AWSRegion)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("GEMINI_API_KEY", config.GeminiAPIKey)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "ALERT_CRITICAL_DAYS":
		return config.AlertCriticalDays
	case "ALERT_WARNING_DAYS":
		return config.AlertWarningDays
	case "ALERT_NORMAL_DAYS":
		return config.AlertNormalDays
	case "SCAN_INTERVAL_HOURS":
		return config.ScanIntervalHours
	case "NOTIFY_DESKTOP":
		return getBoolString(config.NotifyDesktop)
	case "NOTIFY_EMAIL":
		return getBoolString(config.NotifyEmail)
	case "NOTIFY_SMS":
		return getBoolString(config.NotifySMS)
	case "ALERT_EMAIL_TO":
		return config.AlertEmailTo
	case "ALERT_SMS_TO":
		return config.AlertSMSTo
	case "MAX_RECIPE_INGREDIENTS":
		return config.MaxRecipeIngredients
	case "DETECTION_CONFIDENCE":
		return config.DetectionConfidence
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_REGION":
		return config.AWSRegion
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	default:
		return ""
	}
}

// GetConfigInt reads a numeric config value, falling back when the key is
// unset or not a number.
func GetConfigInt(key string, fallback int) int {
	value := GetConfig(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func GetConfigBool(key string) bool {
	return GetConfig(key) == "true"
}

// GetConfigFloat reads a float config value with a fallback.
func GetConfigFloat(key string, fallback float64) float64 {
	value := GetConfig(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

// GetShelfLifeDefaults returns the per-category shelf life map, seeded with
// sensible defaults for anything the config file leaves out.
func GetShelfLifeDefaults() map[string]int {
	defaults := map[string]int{
		"Vegetables": 7,
		"Fruits":     7,
		"Dairy":      7,
		"Meat":       3,
		"Seafood":    2,
		"Beverages":  30,
		"Condiments": 90,
		"Leftovers":  3,
		"Frozen":     90,
		"Others":     14,
	}

	for category, days := range config.DefaultShelfLife {
		if days > 0 {
			defaults[category] = days
		}
	}

	return defaults
}

// GetDailyCheckTimes returns the wall-clock times ("HH:MM") at which the
// scheduler runs the full expiry check.
func GetDailyCheckTimes() []string {
	if len(config.DailyCheckTimes) == 0 {
		return []string{"08:00", "18:00"}
	}
	return config.DailyCheckTimes
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
