package logging

import "strings"

// secretKeyPatterns contains substrings that indicate a key likely holds
// sensitive data. Keys are matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"CREDENTIAL",
	"API_KEY",
	"APIKEY",
	"PRIVATE",
}

// tokenPrefixes are known token prefixes that are masked regardless of key.
var tokenPrefixes = []string{
	"ghp_",
	"gho_",
	"ghs_",
	"sk-",
	"AKIA",
	"xoxb-",
	"xoxp-",
	"oy2", // NuGet API keys
}

// shouldMask reports whether a key name looks like it holds a secret.
func shouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, p := range secretKeyPatterns {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}

// containsTokenPrefix reports whether value starts with a known token prefix.
func containsTokenPrefix(value string) bool {
	for _, p := range tokenPrefixes {
		if strings.HasPrefix(value, p) {
			return true
		}
	}
	return false
}

// maskValue keeps only the last four characters of value.
func maskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
