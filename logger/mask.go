package logger

import "strings"

// MaskEmail hide local part of email address for log output, keep first character and domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "xxxxx"
	}
	return email[:1] + "xxxxx" + email[at:]
}
