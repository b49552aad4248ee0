package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Service identity
const SERVICE_NAME = "AI Sports Booking API"
const SERVICE_VERSION = "1.0.0"
const SERVICE_CITY = "Amman, Jordan"

// Filtering rules
const BUDGET_PRICE_THRESHOLD_JOD = 20.0

// Availability simulation (one slot per hour, start inclusive, end exclusive)
const SLOT_START_HOUR = 8
const SLOT_END_HOUR = 22
const SLOT_UNAVAILABLE_RATE = 0.2

// Booking IDs: BK + 5 random digits
const BOOKING_ID_PREFIX = "BK"
const BOOKING_ID_MIN = 10000
const BOOKING_ID_MAX = 99999

// Chat history cap per session; the system message is kept on top of this.
const MAX_CHAT_HISTORY = 20

// OpenAI defaults
const OPENAI_ENDPOINT_BASE_V1 = "https://api.openai.com/v1"
const OPENAI_DEFAULT_MODEL = "gpt-4o"
const OPENAI_TIMEOUT_SECONDS = 30
const OPENAI_RETRY_COUNT = 1

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_RESOURCE = "venues.json"

// Config holds the env-overridable settings. Everything else is a constant.
type Config struct {
	Port          string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	VenuesPath    string
	OpenAITimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("OPENAI_BASE_URL", OPENAI_ENDPOINT_BASE_V1)
	v.SetDefault("OPENAI_MODEL", OPENAI_DEFAULT_MODEL)
	v.SetDefault("VENUES_PATH", GetResourcePath(VENUES_RESOURCE))
	v.SetDefault("OPENAI_TIMEOUT_SECONDS", OPENAI_TIMEOUT_SECONDS)

	return &Config{
		Port:          v.GetString("PORT"),
		OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
		OpenAIBaseURL: v.GetString("OPENAI_BASE_URL"),
		OpenAIModel:   v.GetString("OPENAI_MODEL"),
		VenuesPath:    v.GetString("VENUES_PATH"),
		OpenAITimeout: time.Duration(v.GetInt("OPENAI_TIMEOUT_SECONDS")) * time.Second,
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
