package openai

import "strings"

// ValidateAPIKey checks the superficial format of an OpenAI API key: it must
// start with "sk-" and be at least 20 characters long. A passing key is not
// guaranteed to be authorized; that is only discovered on first use.
func ValidateAPIKey(key string) bool {
	if !strings.HasPrefix(key, "sk-") {
		return false
	}
	if len(key) < 20 {
		return false
	}
	return true
}
