package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// Styles are the lipgloss styles a Terminal draws with.
type Styles struct {
	Quote     lipgloss.Style
	Category  lipgloss.Style
	Empty     lipgloss.Style
	Selected  lipgloss.Style
	Unchosen  lipgloss.Style
	StatusFor map[domain.StatusColor]lipgloss.Style
}

// DefaultStyles returns the palette used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Quote: lipgloss.NewStyle().
			Italic(true),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7aa2f7")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68")).
			Bold(true),
		Unchosen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6")),
		StatusFor: map[domain.StatusColor]lipgloss.Style{
			domain.ColorNormal: lipgloss.NewStyle(),
			domain.ColorInfo: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7dcfff")),
			domain.ColorSuccess: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ece6a")).
				Bold(true),
			domain.ColorError: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f7768e")).
				Bold(true),
		},
	}
}

// PlainStyles renders every element without color or emphasis.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{
		Quote:     plain,
		Category:  plain,
		Empty:     plain,
		Selected:  plain,
		Unchosen:  plain,
		StatusFor: map[domain.StatusColor]lipgloss.Style{},
	}
}

// Terminal writes each frame change as a styled line.
type Terminal struct {
	styles Styles

	mu  sync.Mutex
	out io.Writer
}

var _ ports.Renderer = (*Terminal)(nil)

// NewTerminal creates a renderer writing to out.
func NewTerminal(out io.Writer, styles Styles) *Terminal {
	return &Terminal{out: out, styles: styles}
}

// ShowQuote implements ports.Renderer.
func (t *Terminal) ShowQuote(_ context.Context, q domain.Quote) {
	t.println(t.styles.Quote.Render(`"`+q.Text+`"`) + " — " + t.styles.Category.Render(q.Category))
}

// ShowNoResults implements ports.Renderer.
func (t *Terminal) ShowNoResults(context.Context) {
	t.println(t.styles.Empty.Render(domain.NoQuotesMessage))
}

// ShowCategories implements ports.Renderer.
func (t *Terminal) ShowCategories(_ context.Context, categories []string, selected string) {
	parts := make([]string, 0, len(categories))

	for _, c := range categories {
		if c == selected {
			parts = append(parts, t.styles.Selected.Render("["+c+"]"))

			continue
		}

		parts = append(parts, t.styles.Unchosen.Render(c))
	}

	t.println(strings.Join(parts, " "))
}

// ShowStatus implements ports.Renderer. The empty status is not drawn.
func (t *Terminal) ShowStatus(_ context.Context, text string, color domain.StatusColor) {
	if text == "" {
		return
	}

	style, ok := t.styles.StatusFor[color]
	if !ok {
		style = lipgloss.NewStyle()
	}

	t.println(style.Render(text))
}

func (t *Terminal) println(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintln(t.out, line)
}
