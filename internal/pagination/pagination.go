package pagination

import (
	"math"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided
// and clamps page_size for callers that bypass query binding.
func (p *PageRequest) Defaults() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// MapPage converts every item of a page, keeping its metadata.
func MapPage[T, U any](page PageResponse[T], fn func(*T) U) PageResponse[U] {
	items := make([]U, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, fn(&page.Data[i]))
	}
	return NewPageResponse(items, page.Page, page.PageSize, page.TotalItems)
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}

// FindPage counts the rows matched by query and loads one page of them.
// query must already carry its Model and Where clauses; order is applied to
// the page fetch only.
func FindPage[T any](query *gorm.DB, req PageRequest, order ...string) (PageResponse[T], error) {
	req.Defaults()

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PageResponse[T]{}, err
	}

	fetch := query.Session(&gorm.Session{}).Scopes(Paginate(req))
	for _, o := range order {
		fetch = fetch.Order(o)
	}
	var items []T
	if err := fetch.Find(&items).Error; err != nil {
		return PageResponse[T]{}, err
	}
	return NewPageResponse(items, req.Page, req.PageSize, total), nil
}
