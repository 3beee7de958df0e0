package strength

import (
	_ "embed"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswords holds the embedded common-password list, lowercased for
// case-insensitive lookup.
var commonPasswords = parseCommonPasswords(commonPasswordsRaw)

func parseCommonPasswords(raw string) map[string]struct{} {
	lines := strings.Split(raw, "\n")
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		set[strings.ToLower(pw)] = struct{}{}
	}

	return set
}

// isCommonPassword reports whether password appears in the embedded
// common-password list (case-insensitive).
func isCommonPassword(password string) bool {
	_, hit := commonPasswords[strings.ToLower(password)]

	return hit
}
