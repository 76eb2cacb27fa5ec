package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/mocks"
)

func TestTransferService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source, _ := seededStore(t, domain.DefaultQuotes())
	exporter := NewTransferService(TransferServiceConfig{Store: source, Logger: discardLogger()})

	data, err := exporter.Export(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")

	target, _ := seededStore(t, domain.QuoteSet{})
	remote := mocks.NewMockQuoteRemote(t)
	remote.EXPECT().PushRemote(mock.Anything, mock.Anything).Return(nil).Times(3)

	importer := NewTransferService(TransferServiceConfig{
		Store:       target,
		Remote:      remote,
		Concurrency: 2,
		Logger:      discardLogger(),
	})

	result, err := importer.Import(ctx, data)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 3, result.Pushed.Succeeded())
	assert.Equal(t, domain.DefaultQuotes(), target.Snapshot())
}

func TestTransferService_ExportEmptyCollection(t *testing.T) {
	store, _ := seededStore(t, domain.QuoteSet{})
	svc := NewTransferService(TransferServiceConfig{Store: store})

	data, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestTransferService_ImportPushFailuresDoNotRollBack(t *testing.T) {
	ctx := context.Background()
	store, _ := seededStore(t, domain.QuoteSet{})
	remote := mocks.NewMockQuoteRemote(t)
	remote.EXPECT().PushRemote(mock.Anything, mock.Anything).
		Return(domain.NewNetworkError("remote", "push", "unreachable"))

	svc := NewTransferService(TransferServiceConfig{Store: store, Remote: remote, Concurrency: 1})

	result, err := svc.Import(ctx, []byte(`[{"text":"A","category":"x"}]`))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Pushed.Failed())
	assert.Equal(t, 1, store.Len())
}

func TestTransferService_ImportRejectsBadPayload(t *testing.T) {
	store, _ := seededStore(t, domain.DefaultQuotes())
	remote := mocks.NewMockQuoteRemote(t)
	svc := NewTransferService(TransferServiceConfig{Store: store, Remote: remote})

	_, err := svc.Import(context.Background(), []byte(`{"text":"A","category":"x"}`))

	require.ErrorIs(t, err, domain.ErrFormat)
	assert.Equal(t, domain.DefaultQuotes(), store.Snapshot())
}

func TestParseQuotes(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		expected  domain.QuoteSet
		wantIndex int
		wantErr   bool
	}{
		{
			name:     "valid array",
			data:     `[{"text":"A","category":"x"},{"text":"B","category":"y","extra":1}]`,
			expected: domain.QuoteSet{{Text: "A", Category: "x"}, {Text: "B", Category: "y"}},
		},
		{
			name:     "empty array",
			data:     ` [] `,
			expected: domain.QuoteSet{},
		},
		{name: "object", data: `{"text":"A"}`, wantErr: true, wantIndex: -1},
		{name: "empty input", data: ``, wantErr: true, wantIndex: -1},
		{name: "truncated", data: `[{"text":"A",`, wantErr: true, wantIndex: -1},
		{name: "element not an object", data: `["A"]`, wantErr: true, wantIndex: 0},
		{name: "missing category", data: `[{"text":"A","category":"x"},{"text":"B"}]`, wantErr: true, wantIndex: 1},
		{name: "blank text", data: `[{"text":" ","category":"x"}]`, wantErr: true, wantIndex: 0},
		{name: "numeric text", data: `[{"text":1,"category":"x"}]`, wantErr: true, wantIndex: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, err := ParseQuotes([]byte(tt.data))

			if tt.wantErr {
				var ferr *domain.FormatError
				require.ErrorAs(t, err, &ferr)
				assert.Equal(t, tt.wantIndex, ferr.Index)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, quotes)
		})
	}
}
