// jamf/pagination.go
package jamf

const (
	// DefaultPageLimit applies when the caller does not supply a limit.
	DefaultPageLimit = 50
	// MaxPageLimit is the documented maximum page size. Values above it are
	// rejected, not clamped.
	MaxPageLimit = 200
)

// PageOptions selects a window of a list result. The Classic API list
// endpoints return the complete collection in server order; the adapter
// applies the window client-side.
type PageOptions struct {
	Page  int
	Limit int
}

// Validate applies the default limit and rejects out-of-range values before
// any network call.
func (p *PageOptions) Validate() error {
	if p.Page < 0 {
		return invalidArgf("page must be >= 0, got %d", p.Page)
	}
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit < 1 {
		return invalidArgf("limit must be >= 1, got %d", p.Limit)
	}
	if p.Limit > MaxPageLimit {
		return invalidArgf("limit must be <= %d, got %d", MaxPageLimit, p.Limit)
	}
	return nil
}

// window slices a server-ordered list to the requested page, preserving
// order. Pages past the end of the collection yield an empty window; the
// bound is checked before multiplying so oversized page numbers cannot
// overflow the start index.
func window[T any](items []T, p PageOptions) []T {
	if p.Limit < 1 || p.Page < 0 || p.Page > len(items)/p.Limit {
		return []T{}
	}
	start := p.Page * p.Limit
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
