// Package validation parses and validates command-line input before
// any store or cache access happens.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ErrValidation marks malformed input. Callers report it distinctly
// from runtime failures.
var ErrValidation = errors.New("invalid input")

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// UserID parses a positive integer user identifier.
func UserID(raw string) (uint, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: user ID must be a positive number, got %q", ErrValidation, raw)
	}
	return uint(id), nil
}

// Amount parses a signed finite decimal amount.
func Amount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: amount must be a finite number, got %q", ErrValidation, raw)
	}
	return amount, nil
}

// Date parses a strict YYYY-MM-DD calendar date in UTC.
func Date(raw string) (time.Time, error) {
	if !datePattern.MatchString(raw) {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrValidation, raw)
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be a valid calendar date, got %q", ErrValidation, raw)
	}
	return date, nil
}

// Count parses a positive integer count.
func Count(raw string) (int, error) {
	count, err := strconv.Atoi(raw)
	if err != nil || count <= 0 {
		return 0, fmt.Errorf("%w: count must be a positive number, got %q", ErrValidation, raw)
	}
	return count, nil
}
