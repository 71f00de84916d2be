package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type SMTP struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

// Config carries everything the process needs from the environment. Mail
// credentials and the enquiry recipient are injected here and nowhere else.
type Config struct {
	Addr        string
	MySQLDSN    string
	MongoURI    string
	MongoDBName string
	SMTP        SMTP
}

// Load reads the env file named by START and fails fast on anything missing.
func Load() *Config {
	if err := godotenv.Load(os.Getenv("START")); err != nil {
		log.Fatalf("Env file not found")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8082"
	}

	return &Config{
		Addr:        addr,
		MySQLDSN:    mustGetenv("MYSQL_DSN"),
		MongoURI:    mustGetenv("MONGO_URI"),
		MongoDBName: mustGetenv("MONGO_DB_NAME"),
		SMTP: SMTP{
			Host:      mustGetenv("SMTP_HOST"),
			Port:      mustAtoi("SMTP_PORT"),
			Username:  mustGetenv("SMTP_USER"),
			Password:  mustGetenv("SMTP_PASS"),
			Recipient: mustGetenv("ENQUIRY_RECIPIENT"),
		},
	}
}

func mustGetenv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("%s is not set in environment", key)
	}
	return val
}

func mustAtoi(key string) int {
	val, err := strconv.Atoi(mustGetenv(key))
	if err != nil {
		log.Fatalf("%s is not a number", key)
	}
	return val
}
