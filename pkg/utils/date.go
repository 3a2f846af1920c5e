package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", dateStr, err)
	}

	return date, nil
}

// ParseDateTime aceita "YYYY-MM-DD HH:MM:SS" e, como alternativa, apenas a data
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.DateTime, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("data/hora inválida %q", value)
	}

	return t, nil
}
