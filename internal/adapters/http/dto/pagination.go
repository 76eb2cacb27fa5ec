package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// ErrInvalidCursor is returned when cursor decoding fails.
var ErrInvalidCursor = errors.New("invalid cursor")

// PaginationRequest represents pagination parameters from the request.
type PaginationRequest struct {
	// Cursor is an opaque string from a previous response's NextCursor.
	Cursor string `form:"cursor"`

	// Limit is the maximum number of items to return (1-100, default 20).
	Limit int `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// Offset returns the position the page starts at. An empty cursor is the
// first page.
func (p *PaginationRequest) Offset() (int, error) {
	if p.Cursor == "" {
		return 0, nil
	}

	data, err := DecodeCursor(p.Cursor)
	if err != nil {
		return 0, err
	}

	return data.Offset, nil
}

// PaginatedResponse is a generic paginated response structure.
type PaginatedResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// Total is the size of the whole filtered result.
	Total int `json:"total"`

	// NextCursor is the cursor to use for the next page.
	// Empty if there are no more items.
	NextCursor string `json:"nextCursor,omitempty"`

	// HasMore indicates whether there are more items after this page.
	HasMore bool `json:"hasMore"`
}

// Paginate slices one page out of items. The collection is ordered and
// append-only between syncs, so a position is a stable cursor.
func Paginate[T any](items []T, offset, limit int) *PaginatedResponse[T] {
	total := len(items)
	start := min(max(offset, 0), total)
	end := min(start+limit, total)

	page := make([]T, end-start)
	copy(page, items[start:end])

	resp := &PaginatedResponse[T]{
		Items:   page,
		Total:   total,
		HasMore: end < total,
	}

	if resp.HasMore {
		resp.NextCursor = EncodeCursor(&CursorData{Offset: end})
	}

	return resp
}

// CursorData contains the data encoded in a pagination cursor.
type CursorData struct {
	// Offset is the index of the first item of the next page.
	Offset int `json:"o"`
}

// EncodeCursor encodes cursor data to a base64 string.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string to cursor data.
func DecodeCursor(encoded string) (*CursorData, error) {
	jsonBytes, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData

	err = json.Unmarshal(jsonBytes, &data)
	if err != nil || data.Offset < 0 {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}
