package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT signing secret, read once at startup
	JWTSecret string `yaml:"JWT_SECRET"`

	// Production flag: error bodies omit internals when true
	IsProd bool `yaml:"IS_PROD"`

	// HTTP server
	AppPort string `yaml:"APP_PORT"`
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

	// Mirror keys that are read through os.Getenv elsewhere
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("IS_PROD", getBoolString(config.IsProd))
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
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
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_PORT":
		return config.AppPort
	case "IS_PROD":
		return getBoolString(config.IsProd)
	default:
		return ""
	}
}
