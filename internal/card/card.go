// Package card renders a single menu item from a text template.
//
// Templates receive a menu.Item and may use the sprout std, strings and
// numeric registries plus two helpers:
//
//	price   formats a float as "$12.50"
//	excerpt shortens text to n runes, adding "..." when cut
package card

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/go-sprout/sprout"
	"github.com/go-sprout/sprout/registry/numeric"
	"github.com/go-sprout/sprout/registry/std"
	sproutstrings "github.com/go-sprout/sprout/registry/strings"

	"github.com/AntoineGS/tidymenu/internal/menu"
)

// DefaultTemplate is used when no card template is configured.
const DefaultTemplate = `{{ .Name }}  {{ price .Price }}
{{ excerpt (default "No recipe listed" .Recipe) 48 }}`

// Renderer renders items with a parsed template.
type Renderer struct {
	tmpl *template.Template
}

// New parses text as a card template. An empty text selects DefaultTemplate.
func New(text string) (*Renderer, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultTemplate
	}

	funcs, err := funcMap()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("card").Option("missingkey=error").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing card template: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// MustDefault returns a renderer for DefaultTemplate.
func MustDefault() *Renderer {
	r, err := New(DefaultTemplate)
	if err != nil {
		panic(err)
	}

	return r
}

// Render executes the template for one item. Trailing whitespace is trimmed
// from every line.
func (r *Renderer) Render(item menu.Item) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, item); err != nil {
		return "", fmt.Errorf("rendering card %s: %w", item.ID, err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n"), nil
}

func funcMap() (template.FuncMap, error) {
	handler := sprout.New()
	if err := handler.AddRegistries(
		std.NewRegistry(),
		sproutstrings.NewRegistry(),
		numeric.NewRegistry(),
	); err != nil {
		return nil, fmt.Errorf("loading template functions: %w", err)
	}

	funcs := template.FuncMap(handler.Build())
	funcs["price"] = FormatPrice
	funcs["excerpt"] = Excerpt

	return funcs, nil
}

// FormatPrice formats a price with a dollar sign and two decimals.
func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// Excerpt returns the first n runes of s, with "..." appended when s was
// longer. Newlines are folded into spaces.
func Excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if n <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}

	return strings.TrimRight(string(runes[:n-3]), " ,") + "..."
}
