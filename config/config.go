package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis configuration (plan session cache). Empty addr means the
	// in-memory session store is used instead.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Direct SMTP channel. Presence of user+pass selects this channel.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`

	// Resend API channel, used when SMTP credentials are absent.
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	ResendFrom   string `mapstructure:"RESEND_FROM"`

	// Mail addressing shared by all channels.
	MailTo       string `mapstructure:"MAIL_TO"`
	MailFromName string `mapstructure:"MAIL_FROM_NAME"`

	// Upper bound for a single outbound send, in milliseconds.
	EmailTimeoutMS int `mapstructure:"EMAIL_TIMEOUT_MS"`

	// Coarse global limiter (requests per minute per IP).
	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Submission admission control: fixed window length in minutes and
	// admitted requests per window per client.
	RateLimitWindowMin int `mapstructure:"RATE_LIMIT_WINDOW_MIN"`
	RateLimitMax       int `mapstructure:"RATE_LIMIT_MAX"`

	// Plan session lifetime in minutes.
	SessionTTLMin int `mapstructure:"SESSION_TTL_MIN"`
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
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAIL_FROM_NAME", "Web Maker")
	viper.SetDefault("RESEND_FROM", "noreply@web-maker.es")
	viper.SetDefault("EMAIL_TIMEOUT_MS", 10000)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_MIN", 15)
	viper.SetDefault("RATE_LIMIT_MAX", 5)
	viper.SetDefault("SESSION_TTL_MIN", 30)

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
