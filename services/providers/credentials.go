package providers

import "strings"

// Placeholder values that commonly end up in checked-in .env templates. A key
// matching one of these disables the gateway for the session instead of
// failing every request later.
var placeholderKeys = []string{
	"your_openai_api_key_here",
	"your_anthropic_api_key_here",
	"sk-proj-your-key-here",
	"sk-ant-your-key-here",
	"your_api_key_here",
	"your_key_here",
	"replace_with_your_key",
}

// ValidAPIKey reports whether key looks like a real credential for the given
// provider: non-empty, not a known placeholder, and matching the provider's
// key prefix convention.
func ValidAPIKey(key, provider string) bool {
	if key == "" {
		return false
	}

	for _, placeholder := range placeholderKeys {
		if strings.EqualFold(key, placeholder) {
			return false
		}
	}

	switch provider {
	case ClaudeProviderName:
		return strings.HasPrefix(key, "sk-ant-api03-") && len(key) > 20
	case OpenAIProviderName:
		return strings.HasPrefix(key, "sk-") && len(key) > 20
	}

	return true
}
