// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

// Pagination carries the paging parameters of a list request.
type Pagination struct {
	Page     int
	PageSize int
}

// PageInfo describes the paging metadata of a list result.
//
// TotalPages is ceil(TotalRecords / PageSize); an empty table yields zero
// pages. Page is the effective page after clamping (requests below 1 are
// served as page 1).
type PageInfo struct {
	Page         int
	PageSize     int
	TotalPages   int
	TotalRecords int64
}

// IDGenerator produces fresh opaque identifiers for new records.
type IDGenerator interface {
	NewID() string
}
