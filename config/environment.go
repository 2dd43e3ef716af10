package config

import "os"

type Environment struct {
	Port        string
	DBPath      string
	OllamaHost  string
	OllamaModel string
}

// Load reads settings from the environment, falling back to local
// development defaults.
func Load() Environment {
	return Environment{
		Port:        getenv("PORT", "8000"),
		DBPath:      getenv("FLASHCARDS_DB", "flashcards.db"),
		OllamaHost:  getenv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel: getenv("OLLAMA_MODEL", "llama3.2"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
