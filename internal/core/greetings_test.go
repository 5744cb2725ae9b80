package core

import (
	"strings"
	"testing"
	"time"
)

func TestGreetingByTimeOfDay(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
	}

	for _, tc := range cases {
		now := time.Date(2025, 6, 1, tc.hour, 30, 0, 0, time.UTC)
		got := Greeting("LogisticsFuture", now)
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("Greeting at hour %d = %q, want prefix %q", tc.hour, got, tc.want)
		}
		if !strings.Contains(got, "LogisticsFuture") {
			t.Errorf("Greeting at hour %d is missing the company name", tc.hour)
		}
	}
}

func TestServiceIntro(t *testing.T) {
	got := ServiceIntro("LogisticsFuture")
	if !strings.Contains(got, "LogisticsFuture") {
		t.Errorf("ServiceIntro = %q, want the company name embedded", got)
	}
}
