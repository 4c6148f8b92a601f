package usecase

import (
	"strings"

	"github.com/dexview/backend/internal/domain"
)

// FilterReferences returns the references whose name contains query as a
// case-insensitive substring, in their original order. Lower-casing is the
// only normalization applied. An empty query returns a copy of refs.
func FilterReferences(refs []domain.Reference, query string) []domain.Reference {
	filtered := make([]domain.Reference, 0, len(refs))
	needle := strings.ToLower(query)

	for _, ref := range refs {
		if strings.Contains(strings.ToLower(ref.Name), needle) {
			filtered = append(filtered, ref)
		}
	}

	return filtered
}
