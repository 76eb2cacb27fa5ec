package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// ExportFilename is the suggested name for exported collections.
const ExportFilename = "quotes.json"

// ImportResult reports what an import appended and how each push went.
type ImportResult struct {
	Imported int                `json:"imported"`
	Pushed   domain.BatchResult `json:"pushed"`
}

// TransferService moves the collection in and out as JSON files.
type TransferService struct {
	store       *QuoteStore
	remote      ports.QuoteRemote
	concurrency int
	logger      *slog.Logger
}

// TransferServiceConfig contains the dependencies of a TransferService.
type TransferServiceConfig struct {
	Store  *QuoteStore
	Remote ports.QuoteRemote

	// Concurrency bounds pushes of imported quotes.
	Concurrency int
	Logger      *slog.Logger
}

// NewTransferService creates a transfer service.
func NewTransferService(cfg TransferServiceConfig) *TransferService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TransferService{
		store:       cfg.Store,
		remote:      cfg.Remote,
		concurrency: cfg.Concurrency,
		logger:      logger.With(slog.String("component", "app.TransferService")),
	}
}

// Export returns the whole collection as indented JSON.
func (t *TransferService) Export(_ context.Context) ([]byte, error) {
	quotes := t.store.Snapshot()

	out, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}

// Import appends every quote in data and pushes each one to the remote.
// data must be a JSON array of objects with non-empty string text and
// category fields. Anything else is a FormatError and nothing changes.
func (t *TransferService) Import(ctx context.Context, data []byte) (ImportResult, error) {
	quotes, err := ParseQuotes(data)
	if err != nil {
		return ImportResult{}, err
	}

	if err := t.store.Append(ctx, quotes...); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{
		Imported: len(quotes),
		Pushed:   PushAll(ctx, t.remote, quotes, t.concurrency),
	}

	t.logger.InfoContext(ctx, "quotes imported",
		slog.Int("imported", result.Imported),
		slog.Int("pushed", result.Pushed.Succeeded()),
		slog.Int("push_failed", result.Pushed.Failed()),
	)

	return result, nil
}

// importRecord uses pointers so missing fields and wrong types are told apart.
type importRecord struct {
	Text     *string `json:"text"`
	Category *string `json:"category"`
}

// ParseQuotes decodes an import payload.
func ParseQuotes(data []byte) (domain.QuoteSet, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.NewFormatError("expected a JSON array of quotes")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, domain.NewFormatError("malformed JSON: " + err.Error())
	}

	quotes := make(domain.QuoteSet, 0, len(elements))

	for i, raw := range elements {
		el := bytes.TrimSpace(raw)
		if len(el) == 0 || el[0] != '{' {
			return nil, domain.NewElementFormatError(i, "expected an object")
		}

		var rec importRecord
		if err := json.Unmarshal(el, &rec); err != nil {
			return nil, domain.NewElementFormatError(i, "text and category must be strings")
		}

		if rec.Text == nil || strings.TrimSpace(*rec.Text) == "" {
			return nil, domain.NewElementFormatError(i, "text must be a non-empty string")
		}

		if rec.Category == nil || strings.TrimSpace(*rec.Category) == "" {
			return nil, domain.NewElementFormatError(i, "category must be a non-empty string")
		}

		quotes = append(quotes, domain.Quote{Text: *rec.Text, Category: *rec.Category})
	}

	return quotes, nil
}
