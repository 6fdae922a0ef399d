package validators

import "strings"

// NormalizeEmail lowercases the domain part and trims spaces, the way
// emails are compared for uniqueness.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
