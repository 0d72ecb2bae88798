package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a .env style file).
type Config struct {
	App     AppConfig
	DB      DBConfig
	Invoice InvoiceConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// DBConfig settings for the embedded SQLite database.
type DBConfig struct {
	Path string // path to the database file
}

// InvoiceConfig defaults applied while assembling invoice drafts.
type InvoiceConfig struct {
	OutputDir  string // directory where generated PDFs are written
	ExpiryDays int    // default payment term used for the expiry date
	HourlyRate string // default hourly rate, decimal string; "0" disables derivation
}

// Load reads configuration from environment variables (and optionally from a
// .env / config.env file in the working directory). Env vars take priority.
// Expected names: APP_ENV, LOG_LEVEL, DB_PATH, OUTPUT_DIR, EXPIRY_DAYS,
// HOURLY_RATE.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env); missing files are fine.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "invoice-desk"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Path: getString(v, "DB_PATH", "invoice_app.db"),
		},
		Invoice: InvoiceConfig{
			OutputDir:  getString(v, "OUTPUT_DIR", "."),
			ExpiryDays: getInt(v, "EXPIRY_DAYS", 30),
			HourlyRate: getString(v, "HOURLY_RATE", "0"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
