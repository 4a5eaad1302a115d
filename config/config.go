package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Payment PaymentConfig
	SMS     SMSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port           string
	FrontendOrigin string
}

type StoreConfig struct {
	Backend  string // "memory" or "mongo"
	MongoURI string
	Database string
}

type PaymentConfig struct {
	APIKey  string
	APIURL  string
	HostURL string
}

type SMSConfig struct {
	APIKey   string
	SenderID string
	APIURL   string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("HOST_URL", "http://localhost:8000")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:9000")
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "oushodcloud")
	viper.SetDefault("SMS_API_URL", "http://bulksmsbd.net/api/smsapi")
	viper.SetDefault("SMS_SENDER_ID", "OushodCloud")
	viper.SetDefault("LOG_LEVEL", "info")

	hostURL := viper.GetString("HOST_URL")

	cfg := &Config{
		Server: ServerConfig{
			Port:           viper.GetString("PORT"),
			FrontendOrigin: viper.GetString("FRONTEND_ORIGIN"),
		},
		Store: StoreConfig{
			Backend:  viper.GetString("STORE_BACKEND"),
			MongoURI: viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DATABASE"),
		},
		Payment: PaymentConfig{
			APIKey:  viper.GetString("UDDOKTAPAY_API_KEY"),
			APIURL:  viper.GetString("UDDOKTAPAY_API_URL"),
			HostURL: hostURL,
		},
		SMS: SMSConfig{
			APIKey:   viper.GetString("SMS_API_KEY"),
			SenderID: viper.GetString("SMS_SENDER_ID"),
			APIURL:   viper.GetString("SMS_API_URL"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
