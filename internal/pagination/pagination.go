package pagination

import (
	"gorm.io/gorm"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is the uniform listing envelope returned by every paged endpoint.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Clamp normalizes pathological pagination input: page is at least 1 and
// limit falls back to the default / is capped at the maximum.
func Clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Paginate executes the already-filtered query with offset windowing and
// returns the envelope. Count and windowed find run against the same
// query; under concurrent writes the two reads may observe slightly
// different states, which is acceptable for a UI listing.
func Paginate[T any](tx *gorm.DB, page, limit int, sort string, preloads ...string) (*Page[T], error) {
	page, limit = Clamp(page, limit)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	query := tx
	if sort != "" {
		query = query.Order(sort)
	}
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	data := make([]T, 0, limit)
	if err := query.Limit(limit).Offset((page - 1) * limit).Find(&data).Error; err != nil {
		return nil, err
	}

	return NewPage(data, total, page, limit), nil
}

// NewPage assembles the envelope metadata from a windowed result and the
// global match count.
func NewPage[T any](data []T, total int64, page, limit int) *Page[T] {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &Page[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(limit) < total,
		HasPrev:    page > 1,
	}
}
