// Package pagination computes offset windows over sorted collections
// and the navigation metadata returned by every listing endpoint.
package pagination

import "math"

const (
	// DefaultFeedLimit is the page size for post listings.
	DefaultFeedLimit = 10
	// DefaultDirectoryLimit is the page size for the user directory.
	DefaultDirectoryLimit = 20
	// MaxLimit bounds the page size a caller can request.
	MaxLimit = 50
)

// Pagination describes one offset window. Offset paging is weakly
// consistent: re-applying the same (page, limit) after concurrent
// inserts can shift or duplicate items across page boundaries. A cursor
// keyed on (createdAt, id) would avoid that; the offset scheme is the
// documented API contract.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalPosts"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`

	Skip  int64 `json:"-"`
	Limit int64 `json:"-"`
}

// Paginate computes the window for the requested page. Pages below 1
// fall back to 1, limits below 1 fall back to the given default, and
// limits above MaxLimit are clamped. TotalPages is 0 for an empty
// collection; pages past the end yield an empty window with
// HasNext=false.
func Paginate(totalCount int64, page, limit, fallbackLimit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = fallbackLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
		Skip:        int64(page-1) * int64(limit),
		Limit:       int64(limit),
	}
}
