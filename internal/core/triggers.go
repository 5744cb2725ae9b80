package core

import "strings"

// discoveryTriggers are the verbs that mark a message as a discovery
// query, in priority order.
var discoveryTriggers = []string{
	"find", "where", "show", "open", "locate", "search", "route", "component", "api",
}

// triggerRule is one (pattern, extractor) pair of the classifier.
type triggerRule struct {
	name    string
	extract func(message string) (string, bool)
}

// TriggerClassifier decides whether a message is a discovery query
// and extracts the discovery text. Rules are evaluated in a fixed
// order: for each trigger verb, a prefix match ("<verb> ...") is
// checked before an interior match ("... <verb> ..."), and the first
// rule that fires wins.
type TriggerClassifier struct {
	rules []triggerRule
}

func NewTriggerClassifier() *TriggerClassifier {
	c := &TriggerClassifier{}
	for _, verb := range discoveryTriggers {
		c.rules = append(c.rules,
			triggerRule{name: verb + ":prefix", extract: prefixExtractor(verb)},
			triggerRule{name: verb + ":interior", extract: interiorExtractor(verb)},
		)
	}
	return c
}

// Extract returns the discovery text of message and true when any
// rule matches, matching case-insensitively but returning the
// remainder with its original casing.
func (c *TriggerClassifier) Extract(message string) (string, bool) {
	for _, rule := range c.rules {
		if text, ok := rule.extract(message); ok {
			return strings.TrimSpace(text), true
		}
	}
	return "", false
}

func prefixExtractor(verb string) func(string) (string, bool) {
	marker := verb + " "
	return func(message string) (string, bool) {
		if len(message) <= len(marker) {
			return "", false
		}
		if strings.EqualFold(message[:len(marker)], marker) {
			return message[len(marker):], true
		}
		return "", false
	}
}

func interiorExtractor(verb string) func(string) (string, bool) {
	marker := " " + verb + " "
	return func(message string) (string, bool) {
		idx := strings.Index(strings.ToLower(message), marker)
		if idx < 0 {
			return "", false
		}
		return message[idx+len(marker):], true
	}
}
