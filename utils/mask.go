package utils

import "strings"

// MaskEmail returns masked email for safe display
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	local := parts[0]
	domain := parts[1]

	maskedLocal := local
	if len(local) > 2 {
		maskedLocal = local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
	} else if len(local) == 2 {
		maskedLocal = local[:1] + "*"
	}

	domainParts := strings.Split(domain, ".")
	if len(domainParts) >= 2 {
		if len(domainParts[0]) > 1 {
			domainParts[0] = domainParts[0][:1] + strings.Repeat("*", len(domainParts[0])-1)
		}
	}

	return maskedLocal + "@" + strings.Join(domainParts, ".")
}

// MaskPhone keeps the leading "+" and country digits plus the last four digits.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	n := len(phone)
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	keep := 0
	if strings.HasPrefix(phone, "+") && n > 7 {
		keep = 3
	}
	return phone[:keep] + strings.Repeat("*", n-keep-4) + phone[n-4:]
}

// MaskDestination masks an email address or a phone number.
func MaskDestination(to string) string {
	if strings.Contains(to, "@") {
		return MaskEmail(to)
	}
	return MaskPhone(to)
}
