package application

import (
	"fmt"
	"strings"

	"vitrine/internal/domain"
)

// ParseSortOrder validates a sort strategy name. Empty means alphabetical.
func ParseSortOrder(s string) (domain.SortOrder, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.SortAlphabetical, nil
	}
	for _, o := range domain.SortOrders {
		if strings.EqualFold(s, string(o)) {
			return o, nil
		}
	}
	return "", &ValidationError{
		Field:   "sort",
		Message: fmt.Sprintf("expected one of %s, got: %s", joinValues(domain.SortOrders), s),
		Err:     ErrInvalidSort,
	}
}

// ParseStatusFilter validates a status category. Empty means any.
func ParseStatusFilter(s string) (domain.StatusFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return domain.FilterAny, nil
	}
	for _, f := range domain.StatusFilters {
		if s == string(f) {
			return f, nil
		}
	}
	return "", &ValidationError{
		Field:   "status",
		Message: fmt.Sprintf("expected one of %s, got: %s", joinValues(domain.StatusFilters), s),
		Err:     ErrInvalidStatus,
	}
}

// ValidatePage checks a page number and page size
func ValidatePage(page, perPage int) error {
	if page < 1 {
		return &ValidationError{Field: "page", Message: fmt.Sprintf("must be at least 1, got: %d", page), Err: ErrInvalidPage}
	}
	if perPage < 1 {
		return &ValidationError{Field: "per-page", Message: fmt.Sprintf("must be at least 1, got: %d", perPage), Err: ErrInvalidPage}
	}
	return nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
