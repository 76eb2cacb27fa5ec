package dto

import (
	"time"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

// QuoteResponse is the API representation of a quote.
type QuoteResponse struct {
	Text     string `json:"text"`
	Category string `json:"category"`

	// Display is the quote as the display surface renders it.
	Display string `json:"display"`
}

// FromQuote converts a domain quote.
func FromQuote(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		Text:     q.Text,
		Category: q.Category,
		Display:  q.Format(),
	}
}

// FromQuotes converts a quote set. The result is never nil.
func FromQuotes(set domain.QuoteSet) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(set))
	for _, q := range set {
		out = append(out, FromQuote(q))
	}

	return out
}

// ListQuotesRequest holds the query parameters of GET /quotes.
type ListQuotesRequest struct {
	PaginationRequest

	// Category filters the list. Empty or "all" lists everything.
	Category string `form:"category"`
}

// RandomQuoteRequest holds the query parameters of GET /quotes/random.
type RandomQuoteRequest struct {
	// Category overrides the persisted filter for this request only.
	Category string `form:"category"`
}

// AddQuoteRequest is the body of POST /quotes.
type AddQuoteRequest struct {
	Text     string `json:"text"     validate:"required,notempty,max=1000"`
	Category string `json:"category" validate:"required,notempty,max=100"`
}

// SelectFilterRequest is the body of PUT /filter.
type SelectFilterRequest struct {
	Category string `json:"category" validate:"required,notempty"`
}

// DisplayResponse is what the display shows after a quote is requested.
// Quote is omitted when the filter selects nothing.
type DisplayResponse struct {
	Quote *QuoteResponse `json:"quote,omitempty"`
	Text  string         `json:"text"`
}

// NewDisplayResponse builds a display response.
func NewDisplayResponse(quote *domain.Quote, text string) DisplayResponse {
	resp := DisplayResponse{Text: text}

	if quote != nil {
		q := FromQuote(*quote)
		resp.Quote = &q
	}

	return resp
}

// CategoriesResponse lists the selectable categories, "all" first.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Selected   string   `json:"selected"`
}

// FilterResponse reports the persisted category selection.
type FilterResponse struct {
	Selected string `json:"selected"`
}

// PushFailure describes one quote that could not be pushed.
type PushFailure struct {
	Quote QuoteResponse `json:"quote"`
	Error string        `json:"error"`
}

// PushSummary counts push outcomes and lists the failures.
type PushSummary struct {
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Failures  []PushFailure `json:"failures,omitempty"`
}

// FromBatchResult summarizes a batch of pushes.
func FromBatchResult(b domain.BatchResult) PushSummary {
	summary := PushSummary{
		Succeeded: b.Succeeded(),
		Failed:    b.Failed(),
	}

	for _, o := range b.Outcomes {
		if !o.OK() {
			summary.Failures = append(summary.Failures, PushFailure{
				Quote: FromQuote(o.Quote),
				Error: o.Error,
			})
		}
	}

	return summary
}

// SyncResultResponse describes one finished sync run.
type SyncResultResponse struct {
	Status     domain.SyncStatus  `json:"status"`
	Message    string             `json:"message"`
	Policy     domain.SyncPolicy  `json:"policy"`
	Pulled     int                `json:"pulled"`
	Replaced   bool               `json:"replaced"`
	Pushed     PushSummary        `json:"pushed"`
	Failure    domain.FailureKind `json:"failure,omitempty"`
	Reason     string             `json:"reason,omitempty"`
	StartedAt  time.Time          `json:"startedAt"`
	DurationMs int64              `json:"durationMs"`
}

// FromSyncResult converts a run result.
func FromSyncResult(r domain.SyncResult) SyncResultResponse {
	return SyncResultResponse{
		Status:     r.Status,
		Message:    r.Status.Message(),
		Policy:     r.Policy,
		Pulled:     r.Pulled,
		Replaced:   r.Replaced,
		Pushed:     FromBatchResult(r.Pushed),
		Failure:    r.Failure,
		Reason:     r.Reason,
		StartedAt:  r.StartedAt,
		DurationMs: r.Duration.Milliseconds(),
	}
}

// SyncStatusResponse is the body of GET /sync/status.
type SyncStatusResponse struct {
	Status  domain.SyncStatus  `json:"status"`
	Message string             `json:"message"`
	Color   domain.StatusColor `json:"color"`
	Since   time.Time          `json:"since"`
	Running bool               `json:"running"`
	Phase   string             `json:"phase"`

	// Last is the most recent finished run, absent before the first one.
	Last *SyncResultResponse `json:"last,omitempty"`
}

// ImportResponse is the body of POST /import.
type ImportResponse struct {
	Imported int         `json:"imported"`
	Pushed   PushSummary `json:"pushed"`
}
