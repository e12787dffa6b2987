package models

import (
	"fmt"
	"strings"
)

// Variant selects which grouping entity a deployment stores words under
type Variant string

const (
	VariantCategory Variant = "category"
	VariantLesson   Variant = "lesson"
)

// ParseVariant converts a configuration value into a Variant
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantCategory, VariantLesson:
		return v, nil
	default:
		return "", fmt.Errorf("unknown schema variant %q (want %q or %q)", s, VariantCategory, VariantLesson)
	}
}

func (v Variant) String() string {
	return string(v)
}
