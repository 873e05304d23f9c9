package config

import "os"

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	DataDir     string
	Tables      TableConfig
	OpenAI      OpenAIConfig
}

// TableConfig holds the collection names used by the document store.
type TableConfig struct {
	Users          string
	MedicalRecords string
	Conversations  string
	Reminders      string
}

// OpenAIConfig holds completion API configuration
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// The records and reminders collections both read TABLE_NAME; deployments
	// set it per process. Carried over from the original deployment config.
	tables := TableConfig{
		Users:          getEnv("USERS_TABLE_NAME", "Users-full"),
		MedicalRecords: getEnv("TABLE_NAME", "MedicalRecords-full"),
		Conversations:  getEnv("CONVERSATIONS_TABLE_NAME", "Conversations-full"),
		Reminders:      getEnv("TABLE_NAME", "Reminders-full"),
	}

	openAI := OpenAIConfig{
		APIKey: getEnv("OPENAI_API_KEY", ""),
		Model:  getEnv("OPENAI_MODEL", "gpt-4"),
	}

	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "*"),
		Environment: getEnv("APP_ENV", "development"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		Tables:      tables,
		OpenAI:      openAI,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
