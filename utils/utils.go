package utils

import (
	"regexp"
	"strings"
)

var (
	serialPrefixRe    = regexp.MustCompile(`(?i)^\s*(s/n|sn)\s*[:#\-.]?\s*`)
	serialSeparatorRe = regexp.MustCompile(`[\s\-_:.]+`)
	nonAlnumRe        = regexp.MustCompile(`[^0-9A-Za-z]`)

	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	codeRe  = regexp.MustCompile(`^\d{6}$`)
)

// NormalizeSerial cleans up a scanned/typed serial number
// (e.g. "SN: 4857-5443.7F1140B5" -> "48575443" + "7F1140B5").
// Strips "SN:"/"S/N:"-style prefixes and all separator characters,
// keeping only alphanumerics.
func NormalizeSerial(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	s = serialPrefixRe.ReplaceAllString(s, "")
	s = serialSeparatorRe.ReplaceAllString(s, "")
	return nonAlnumRe.ReplaceAllString(s, "")
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// ValidVerificationCode checks for exactly 6 digits.
func ValidVerificationCode(s string) bool {
	return codeRe.MatchString(s)
}

// UsernameFromEmail derives a login name from the email local part.
func UsernameFromEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return strings.ToLower(email)
	}
	return strings.ToLower(email[:at])
}
