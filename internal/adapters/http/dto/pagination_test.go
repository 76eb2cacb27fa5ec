package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, DefaultLimit},
		{"negative uses default", -5, DefaultLimit},
		{"within range", 10, 10},
		{"capped at max", 500, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PaginationRequest{Limit: tt.limit}
			assert.Equal(t, tt.want, p.GetLimit())
		})
	}
}

func TestPaginationRequestOffset(t *testing.T) {
	t.Run("empty cursor is first page", func(t *testing.T) {
		p := PaginationRequest{}

		offset, err := p.Offset()
		require.NoError(t, err)
		assert.Zero(t, offset)
	})

	t.Run("encoded cursor", func(t *testing.T) {
		p := PaginationRequest{Cursor: EncodeCursor(&CursorData{Offset: 40})}

		offset, err := p.Offset()
		require.NoError(t, err)
		assert.Equal(t, 40, offset)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		p := PaginationRequest{Cursor: "!!not-base64!!"}

		_, err := p.Offset()
		require.ErrorIs(t, err, ErrInvalidCursor)
	})
}

func TestDecodeCursor(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr bool
	}{
		{"valid", EncodeCursor(&CursorData{Offset: 3}), false},
		{"not json", "bm90LWpzb24=", true},
		{"negative offset", EncodeCursor(&CursorData{Offset: -1}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := DecodeCursor(tt.encoded)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCursor)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 3, data.Offset)
		})
	}
}

func TestEncodeCursor_Nil(t *testing.T) {
	assert.Empty(t, EncodeCursor(nil))
}

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name       string
		offset     int
		limit      int
		wantItems  []int
		wantMore   bool
		wantCursor *CursorData
	}{
		{"first page", 0, 2, []int{0, 1}, true, &CursorData{Offset: 2}},
		{"middle page", 2, 2, []int{2, 3}, true, &CursorData{Offset: 4}},
		{"last page", 4, 2, []int{4}, false, nil},
		{"exact fit", 0, 5, []int{0, 1, 2, 3, 4}, false, nil},
		{"offset past end", 10, 2, []int{}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.offset, tt.limit)

			assert.Equal(t, tt.wantItems, got.Items)
			assert.Equal(t, len(items), got.Total)
			assert.Equal(t, tt.wantMore, got.HasMore)

			if tt.wantCursor == nil {
				assert.Empty(t, got.NextCursor)

				return
			}

			cursor, err := DecodeCursor(got.NextCursor)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestPaginate_CopiesPage(t *testing.T) {
	items := []string{"a", "b"}

	got := Paginate(items, 0, 2)
	got.Items[0] = "changed"

	assert.Equal(t, "a", items[0])
}

func TestPaginate_EmptyInputEncodesArray(t *testing.T) {
	got := Paginate([]string(nil), 0, DefaultLimit)

	assert.NotNil(t, got.Items)
	assert.False(t, got.HasMore)
}
