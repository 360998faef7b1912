package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,2}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	urlRe   = regexp.MustCompile(`(?i)\b(?:https?://\S+|(?:www\.|linkedin\.com/|github\.com/)\S+)`)
	nameWordRe = regexp.MustCompile(`^[A-Za-z'.-]+$`)
)

// ExtractContact pulls name, email, phone, location, and links from the top
// of a plain-text resume. Best effort: missing fields stay empty.
func ExtractContact(text string) types.ContactInfo {
	contact := types.ContactInfo{Links: []string{}}

	contact.Email = emailRe.FindString(text)
	contact.Phone = strings.TrimSpace(phoneRe.FindString(text))

	for _, link := range urlRe.FindAllString(text, 4) {
		contact.Links = append(contact.Links, strings.TrimRight(link, ".,)"))
	}

	// The name is usually one of the first few lines: two to four capitalized
	// words with no digits, not an email or link line.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 5 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.ContainsAny(trimmed, "@:/") || looksLikeDate(trimmed) {
			continue
		}
		words := strings.Fields(trimmed)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		isName := true
		for _, word := range words {
			if len(word) < 2 || !nameWordRe.MatchString(word) {
				isName = false
				break
			}
		}
		if isName {
			contact.Name = trimmed
			break
		}
	}

	// A "City, ST" line near the top that is not the name is the location.
	for i, line := range lines {
		if i > 6 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == contact.Name {
			continue
		}
		if locationRe.MatchString(trimmed) {
			contact.Location = trimmed
			break
		}
	}

	return contact
}
