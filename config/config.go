package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`
	DemoMode          bool   `mapstructure:"DEMO_MODE"`

	// Failed-login lockout.
	MaxLoginAttempts    int `mapstructure:"MAX_LOGIN_ATTEMPTS"`
	LoginLockoutMinutes int `mapstructure:"LOGIN_LOCKOUT_MINUTES"`

	// Session configuration.
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	SessionCookie   string `mapstructure:"SESSION_COOKIE"`
	CSRFCookie      string `mapstructure:"CSRF_COOKIE"`
	CookieSecure    bool   `mapstructure:"COOKIE_SECURE"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisRateLimitDB     int    `mapstructure:"REDIS_RATE_LIMIT_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Push notifications and reminders.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	ReminderLeadMinutes     int    `mapstructure:"REMINDER_LEAD_MINUTES"`

	// Avatar storage.
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`

	// Calendar layout scale shared with clients through page states.
	LayoutPxPerHour    float64 `mapstructure:"LAYOUT_PX_PER_HOUR"`
	LayoutMinChipPx    float64 `mapstructure:"LAYOUT_MIN_CHIP_PX"`
	LayoutLaneGapPx    float64 `mapstructure:"LAYOUT_LANE_GAP_PX"`
	LayoutColumnWidth  float64 `mapstructure:"LAYOUT_COLUMN_WIDTH"`
	LayoutTimelineRow  float64 `mapstructure:"LAYOUT_TIMELINE_ROW"`
	MonthCellChipLimit int     `mapstructure:"MONTH_CELL_CHIP_LIMIT"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DEMO_MODE", false)
	viper.SetDefault("MAX_LOGIN_ATTEMPTS", 5)
	viper.SetDefault("LOGIN_LOCKOUT_MINUTES", 15)
	viper.SetDefault("SESSION_TTL_HOURS", 24*14)
	viper.SetDefault("SESSION_COOKIE", "sessionid")
	viper.SetDefault("CSRF_COOKIE", "csrftoken")
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_RATE_LIMIT_DB", 2)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "shiftflow")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("CLOUDINARY_URL", "")
	viper.SetDefault("LAYOUT_PX_PER_HOUR", 60.0)
	viper.SetDefault("LAYOUT_MIN_CHIP_PX", 12.0)
	viper.SetDefault("LAYOUT_LANE_GAP_PX", 2.0)
	viper.SetDefault("LAYOUT_COLUMN_WIDTH", 140.0)
	viper.SetDefault("LAYOUT_TIMELINE_ROW", 96.0)
	viper.SetDefault("MONTH_CELL_CHIP_LIMIT", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
