package models

// ParentSummary is the variant-neutral view of a category or lesson.
// Order is nil for categories.
type ParentSummary struct {
	ID          int64
	Name        string
	Description *string
	Order       *int
}

// StringPtr returns a pointer to s, or nil when s is empty
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
