package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Checkout  CheckoutConfig
	QR        QRConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// StoreConfig identifies the store on invoice headers.
type StoreConfig struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
}

// CheckoutConfig tunes the register behavior. Tick is the base unit of the
// simulated payment delays; tests shrink it to keep runs fast.
type CheckoutConfig struct {
	Cashier string
	Tick    time.Duration
}

// QRConfig tunes the instant-transfer QR rendering.
type QRConfig struct {
	Size  int
	Level string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "checkout-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("STORE_NAME", "Supermercado MATOS")
	viper.SetDefault("STORE_TAX_ID", "12.345.678/0001-90")
	viper.SetDefault("STORE_ADDRESS", "Rua Exemplo, 123 - Centro")
	viper.SetDefault("STORE_PHONE", "(11) 1234-5678")
	viper.SetDefault("CHECKOUT_CASHIER", "Operator")
	viper.SetDefault("CHECKOUT_TICK_MS", 1000)
	viper.SetDefault("QR_SIZE", 256)
	viper.SetDefault("QR_LEVEL", "M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Store: StoreConfig{
			Name:    viper.GetString("STORE_NAME"),
			TaxID:   viper.GetString("STORE_TAX_ID"),
			Address: viper.GetString("STORE_ADDRESS"),
			Phone:   viper.GetString("STORE_PHONE"),
		},
		Checkout: CheckoutConfig{
			Cashier: viper.GetString("CHECKOUT_CASHIER"),
			Tick:    time.Duration(viper.GetInt("CHECKOUT_TICK_MS")) * time.Millisecond,
		},
		QR: QRConfig{
			Size:  viper.GetInt("QR_SIZE"),
			Level: viper.GetString("QR_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
