package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Honeypot  HoneypotConfig  `mapstructure:"honeypot"`
	Reporter  ReporterConfig  `mapstructure:"reporter"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}

// AuthConfig holds the pre-shared key compared against the X-API-Key header
type AuthConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// HoneypotConfig tunes scam detection and the reporting trigger
type HoneypotConfig struct {
	ReportThreshold int      `mapstructure:"report_threshold"`
	Keywords        []string `mapstructure:"keywords"`
	ScamReply       string   `mapstructure:"scam_reply"`
	DefaultReply    string   `mapstructure:"default_reply"`
}

// ReporterConfig holds the outbound intelligence collector settings
type ReporterConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	BurstSize         int  `mapstructure:"burst_size"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// DefaultKeywords is the fixed scam trigger keyword set. Order matters:
// matched keywords are reported in this order, not input order.
var DefaultKeywords = []string{
	"blocked", "verify", "urgent", "account",
	"upi", "bank", "suspended", "click", "link",
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/scambait-lab")
	}

	setDefaults(v)

	// Environment variables
	v.SetEnvPrefix("SCAMBAIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("auth.api_key", "SCAMBAIT_AUTH_API_KEY")
	v.BindEnv("reporter.url", "SCAMBAIT_REPORTER_URL")
	v.BindEnv("reporter.enabled", "SCAMBAIT_REPORTER_ENABLED")
	v.BindEnv("server.host", "SCAMBAIT_SERVER_HOST")
	v.BindEnv("server.http_port", "SCAMBAIT_SERVER_HTTP_PORT")
	v.BindEnv("app.environment", "SCAMBAIT_APP_ENVIRONMENT")
	v.BindEnv("logger.level", "SCAMBAIT_LOGGER_LEVEL")

	// Read config file; missing file is fine, defaults and env take over
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "scambait-lab")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("auth.api_key", "")

	v.SetDefault("honeypot.report_threshold", 5)
	v.SetDefault("honeypot.keywords", DefaultKeywords)
	v.SetDefault("honeypot.scam_reply", "Why is my account being blocked? Can you explain clearly?")
	v.SetDefault("honeypot.default_reply", "Sorry, I didn't understand. Can you please explain?")

	v.SetDefault("reporter.enabled", true)
	v.SetDefault("reporter.url", "http://localhost:9090/api/v1/intelligence/report")
	v.SetDefault("reporter.timeout", 5*time.Second)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-API-Key"})
	v.SetDefault("cors.max_age", 300)

	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.requests_per_minute", 60)
	v.SetDefault("ratelimit.burst_size", 10)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.time_format", time.RFC3339)
}
