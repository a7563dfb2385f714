package report

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hamed0406/envprobe/internal/domain"
)

// RefreshMeta makes browsers reload the report every second.
const RefreshMeta = `<meta http-equiv="Refresh" content="1">`

func header(title string) string {
	return "----------" + title + "----------"
}

// HTML renders the report as the page served by the API.
func (r *Report) HTML() string {
	var b strings.Builder
	b.WriteString(RefreshMeta)
	b.WriteString("\n")
	for _, s := range r.Sections {
		b.WriteString(html.EscapeString(header(s.Title)))
		b.WriteString("<br>\n")
		for _, l := range s.Lines {
			text := html.EscapeString(l.Text)
			if l.Severity == domain.SeverityError {
				text = `<span class="error">` + text + `</span>`
			}
			b.WriteString(text)
			b.WriteString("<br>\n")
		}
	}
	return b.String()
}

// WriteText renders the report for a terminal. Colors follow
// color.NoColor.
func (r *Report) WriteText(w io.Writer) error {
	head := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	for _, s := range r.Sections {
		if _, err := head.Fprintln(w, header(s.Title)); err != nil {
			return err
		}
		for _, l := range s.Lines {
			var err error
			switch l.Severity {
			case domain.SeverityError:
				_, err = bad.Fprintln(w, l.Text)
			case domain.SeverityWarn:
				_, err = warn.Fprintln(w, l.Text)
			default:
				_, err = fmt.Fprintln(w, l.Text)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
