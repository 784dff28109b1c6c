package git

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// RedactionMarker replaces each character of a masked password
const RedactionMarker = "•"

// PrivateRepositoryMessage replaces git's stderr when a network operation
// failed because git wanted to prompt for credentials
const PrivateRepositoryMessage = "Repository is private, please provide credentials"

// terminalPromptsDisabled is matched against git's stderr. git prints it in
// the language requested through LANGUAGE, so the match only works when that
// language is English.
const terminalPromptsDisabled = "terminal prompts disabled"

// Redact replaces every occurrence of password in text with a run of
// RedactionMarker as long as the password. The URL-escaped spellings of the
// password, as they appear inside a rewritten remote URL, are masked with
// the same run.
func Redact(text, password string) string {
	if password == "" || text == "" {
		return text
	}

	userinfo := strings.TrimPrefix(url.UserPassword("", password).String(), ":")
	forms := []string{userinfo, url.PathEscape(password), url.QueryEscape(password), password}
	mask := strings.Repeat(RedactionMarker, utf8.RuneCountInString(password))
	seen := map[string]bool{}
	for _, form := range forms {
		if seen[form] {
			continue
		}
		seen[form] = true
		text = strings.ReplaceAll(text, form, mask)
	}
	return text
}

// sanitizeNetworkResult masks password in both streams and rewrites the
// credential prompt failure into PrivateRepositoryMessage
func sanitizeNetworkResult(result Result, password string) Result {
	needsCredentials := !result.Success() && strings.Contains(result.Stderr, terminalPromptsDisabled)

	result.Stdout = Redact(result.Stdout, password)
	result.Stderr = Redact(result.Stderr, password)
	if needsCredentials {
		result.Stderr = PrivateRepositoryMessage
	}
	return result
}
