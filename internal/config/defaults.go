package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"data_file":      "data/clientbook.json",
		"storage_driver": "json",
		"log_level":      "info",
		"log_format":     "text",
		"http_addr":      ":8080",
	}
}
