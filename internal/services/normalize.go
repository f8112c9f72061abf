package services

import (
	"strings"

	"tourly/pkg/utils"
)

// requireName trims raw and rejects it when nothing is left.
func requireName(field, raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", utils.Validation(field, "Name is required")
	}
	return name, nil
}

// optionalString folds nil, empty and whitespace-only input into nil and
// trims everything else.
func optionalString(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	return &s
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func checkRating(field string, rating float64) error {
	if rating < 0 || rating > 5 {
		return utils.Validation(field, "Rating must be between 0 and 5")
	}
	return nil
}

func checkNonNegativeFloat(field string, v float64) error {
	if v < 0 {
		return utils.Validation(field, field+" must not be negative")
	}
	return nil
}

func checkNonNegativeInt(field string, v int) error {
	if v < 0 {
		return utils.Validation(field, field+" must not be negative")
	}
	return nil
}
