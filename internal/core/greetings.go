package core

import (
	"fmt"
	"time"
)

// Greeting returns a time-of-day welcome line for seeding an empty
// conversation.
func Greeting(company string, now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 12:
		return fmt.Sprintf("Good morning! Welcome to %s.", company)
	case hour < 18:
		return fmt.Sprintf("Good afternoon! Welcome to %s.", company)
	default:
		return fmt.Sprintf("Good evening! Welcome to %s.", company)
	}
}

// ServiceIntro returns the fixed capabilities line shown under the
// greeting.
func ServiceIntro(company string) string {
	return fmt.Sprintf("I'm here to help you with %s services. Ask me about shipping, tracking, or our company!", company)
}
