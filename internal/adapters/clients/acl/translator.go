package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

// postDTO is a record as the remote stores it.
type postDTO struct {
	ID       json.Number `json:"id,omitempty"`
	UserID   json.Number `json:"userId,omitempty"`
	Title    string      `json:"title"`
	Body     string      `json:"body"`
	Category string      `json:"category,omitempty"`
}

// outgoingPost is what a push sends.
type outgoingPost struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	UserID   int    `json:"userId"`
	Category string `json:"category"`
}

// pushUserID is the author id attached to pushed posts.
const pushUserID = 1

// Translator converts one external record. ok is false for records that
// cannot become a domain value and should be skipped.
type Translator[External any, Domain any] func(ext *External) (value Domain, ok bool)

// TranslateSlice applies translate to every item, dropping skipped ones.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) []D {
	result := make([]D, 0, len(items))

	for i := range items {
		if value, ok := translate(&items[i]); ok {
			result = append(result, value)
		}
	}

	return result
}

// DecodeResponse decodes a JSON body into T.
func DecodeResponse[T any](body io.Reader) (T, error) {
	var result T

	if body == nil {
		return result, fmt.Errorf("response body is nil")
	}

	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return result, err
	}

	return result, nil
}

// translatePost maps a post to a quote. Posts without a title carry no
// quote text and are skipped.
func translatePost(p *postDTO) (domain.Quote, bool) {
	text := p.Title
	if strings.TrimSpace(text) == "" {
		return domain.Quote{}, false
	}

	category := p.Category
	if strings.TrimSpace(category) == "" {
		category = "user-" + userLabel(p.UserID)
	}

	return domain.Quote{Text: text, Category: category}, true
}

func userLabel(id json.Number) string {
	if id == "" {
		return "unknown"
	}

	return id.String()
}

// TranslatePosts maps remote posts to a quote set, preserving order.
func TranslatePosts(posts []postDTO) domain.QuoteSet {
	return domain.QuoteSet(TranslateSlice(posts, translatePost))
}

func toPost(q domain.Quote) outgoingPost {
	return outgoingPost{
		Title:    q.Text,
		Body:     q.Text,
		UserID:   pushUserID,
		Category: q.Category,
	}
}
