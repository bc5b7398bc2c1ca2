package parse

import (
	"regexp"
	"strings"
)

// Contact holds whatever contact details could be pulled from one message.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`[\+\(]?\d[\d\-\.\s\(\)]{6,}\d`)
)

// ContactDetails extracts name, email and phone from free text. Customers
// often paste everything in one message, so any subset may come back filled.
func ContactDetails(text string) Contact {
	var c Contact

	c.Email = emailRe.FindString(text)

	remainder := text
	if c.Email != "" {
		remainder = strings.Replace(remainder, c.Email, " ", 1)
	}

	if m := phoneRe.FindString(remainder); m != "" {
		if phone := normalizePhone(m); phone != "" {
			c.Phone = phone
			remainder = strings.Replace(remainder, m, " ", 1)
		}
	}

	words := nameWords(remainder)
	if len(words) >= 1 {
		c.FirstName = words[0]
	}
	if len(words) >= 2 {
		c.LastName = strings.Join(words[1:], " ")
	}
	return c
}

// normalizePhone strips everything but digits and a leading plus, and
// rejects candidates with fewer than 8 digits so short number runs like
// street addresses don't become phone numbers.
func normalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	if len(strings.TrimPrefix(phone, "+")) < 8 {
		return ""
	}
	return phone
}

var wordRe = regexp.MustCompile(`[A-Za-z][A-Za-z'\-]*`)

// nameWords keeps alphabetic tokens that plausibly form a person's name,
// skipping filler like "my name is".
func nameWords(text string) []string {
	lower := strings.ToLower(text)
	for _, lead := range []string{"my name is", "i am", "i'm", "this is", "name:", "it's"} {
		if idx := strings.Index(lower, lead); idx >= 0 {
			text = text[idx+len(lead):]
			lower = strings.ToLower(text)
		}
	}

	skip := map[string]bool{
		"and": true, "the": true, "is": true, "my": true, "email": true,
		"phone": true, "number": true, "name": true, "hi": true, "hello": true,
	}
	var words []string
	for _, w := range wordRe.FindAllString(text, -1) {
		if skip[strings.ToLower(w)] {
			continue
		}
		words = append(words, capitalize(w))
	}
	return words
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
