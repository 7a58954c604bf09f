package web

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout     = "2006-01-02 (Mon)"
	datetimeLayout = "2006-01-02 (Mon) 15:04:05"
)

// Templates holds the parsed page set with the display formatting helpers
// registered as template funcs.
type Templates struct {
	set *template.Template
}

func NewTemplates(dir string) (*Templates, error) {
	set, err := template.New("").Funcs(template.FuncMap{
		"fmtDate":     FormatDate,
		"fmtDatetime": FormatDatetime,
		"fmtPrice":    FormatPrice,
	}).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates in %s: %w", dir, err)
	}
	return &Templates{set: set}, nil
}

func (t *Templates) Render(w io.Writer, name string, data any) error {
	if err := t.set.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func FormatDatetime(t time.Time) string {
	return t.Format(datetimeLayout)
}

func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(2)
}
