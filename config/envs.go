package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP               string // Host IP for the server
	RESTPort             int    // Port for the REST API
	GinMode              string // Mode for the Gin framework (e.g., release, debug, test)
	DBHost               string // Hostname or IP address for the database
	DBPort               int    // Port number for the database
	DBUser               string // Username for the database
	DBPassword           string // Password for the database
	DBName               string // Name of the database
	RedisAddr            string // host:port of the Redis server
	RedisPassword        string // Password for the Redis server
	MazeCacheTTL         int    // Seconds a generated maze stays cached
	LeaderboardSize      int64  // Entries kept per leaderboard
	JWTSecret            string // Secret key for JWT signing
	JWTIssuer            string // Issuer claim for JWTs
	MazeDefaultSize      int    // Grid dimension used when a request omits it
	MazeDefaultAlgorithm string // Algorithm name or menu number used when a request omits it
	MazeMaxAutoRetries   int    // Consecutive failures before escalating
	MazeEscalationPolicy string // retry, change or abort
	MazeMaxEscalations   int    // Escalations answered before the policy aborts
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:               mustGetEnv("HOST_IP"),
		RESTPort:             mustGetEnvAsInt("REST_PORT"),
		GinMode:              getEnvWithDefault("GIN_MODE", "release"),
		DBHost:               mustGetEnv("DB_HOST"),
		DBPort:               mustGetEnvAsInt("DB_PORT"),
		DBUser:               mustGetEnv("DB_USER"),
		DBPassword:           mustGetEnv("DB_PASS"),
		DBName:               mustGetEnv("DB_NAME"),
		RedisAddr:            mustGetEnv("REDIS_ADDR"),
		RedisPassword:        getEnvWithDefault("REDIS_PASSWORD", ""),
		MazeCacheTTL:         getEnvAsIntWithDefault("MAZE_CACHE_TTL", 3600),
		LeaderboardSize:      int64(getEnvAsIntWithDefault("LEADERBOARD_SIZE", 100)),
		JWTSecret:            mustGetEnv("JWT_SECRET"),
		JWTIssuer:            mustGetEnv("JWT_ISSUER"),
		MazeDefaultSize:      getEnvAsIntWithDefault("MAZE_DEFAULT_SIZE", 21),
		MazeDefaultAlgorithm: getEnvWithDefault("MAZE_DEFAULT_ALGORITHM", "prim"),
		MazeMaxAutoRetries:   getEnvAsIntWithDefault("MAZE_MAX_AUTO_RETRIES", 5),
		MazeEscalationPolicy: getEnvWithDefault("MAZE_ESCALATION_POLICY", "change"),
		MazeMaxEscalations:   getEnvAsIntWithDefault("MAZE_MAX_ESCALATIONS", 3),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. A value that does not parse is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
