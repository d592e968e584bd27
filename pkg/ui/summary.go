package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tint/pkg/core"
)

// printer applies styles only for terminal output
type printer struct {
	styled bool
}

func newPrinter(format Format) printer {
	return printer{styled: format == FormatTerminal}
}

func (p printer) status(s Status) string {
	padded := fmt.Sprintf("%-*s", statusWidth, s)
	if !p.styled {
		return padded
	}
	return StatusStyle(s).Sprint(padded)
}

func (p printer) title(s string) string {
	if !p.styled {
		return s
	}
	return TitleStyle.Render(s)
}

func (p printer) path(s string) string {
	if !p.styled {
		return s
	}
	return PathStyle.Render(s)
}

func (p printer) scheme(s string) string {
	if !p.styled {
		return s
	}
	return SchemeStyle.Render(s)
}

func (p printer) muted(s string) string {
	if !p.styled {
		return s
	}
	return MutedStyle.Render(s)
}

func (p printer) warning(s string) string {
	if !p.styled {
		return s
	}
	return WarningStyle.Render(s)
}

func (p printer) failure(s string) string {
	if !p.styled {
		return s
	}
	return ErrorStyle.Render(s)
}

func templateStatus(t core.RenderedTemplate) Status {
	switch {
	case t.Err != nil:
		return StatusFailed
	case t.Written:
		return StatusWritten
	default:
		return StatusPlanned
	}
}

// RenderSummary writes one line per attempted template followed by a total
func RenderSummary(w io.Writer, result *core.GenerateResult, format Format) error {
	p := newPrinter(format)
	var b strings.Builder

	if len(result.Templates) == 0 {
		b.WriteString(p.muted("no templates found"))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	failed := 0
	for _, t := range result.Templates {
		status := templateStatus(t)
		fmt.Fprintf(&b, "%s %s -> %s (%s)\n",
			p.status(status),
			p.title(t.Definition.SourceName),
			p.path(t.Definition.OutputPath),
			p.scheme(t.Definition.ThemeName))

		if t.Err != nil {
			failed++
			fmt.Fprintf(&b, "%*s %s\n", statusWidth, "", p.failure(t.Err.Error()))
		}
		if len(t.Unresolved) > 0 {
			fmt.Fprintf(&b, "%*s %s\n", statusWidth, "",
				p.warning("unresolved: "+strings.Join(t.Unresolved, ", ")))
		}
	}

	b.WriteString(p.muted(footer(result, failed)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func footer(result *core.GenerateResult, failed int) string {
	attempted := len(result.Templates)
	total := max(result.Total, attempted)
	noun := "templates"
	if total == 1 {
		noun = "template"
	}

	switch {
	case failed > 0:
		msg := fmt.Sprintf("%d of %d %s failed", failed, total, noun)
		if skipped := total - attempted; skipped > 0 {
			msg += fmt.Sprintf(", %d not attempted", skipped)
		}
		return msg
	case result.DryRun:
		return fmt.Sprintf("%d %s checked (dry run, nothing written)", total, noun)
	default:
		return fmt.Sprintf("%d %s rendered", total, noun)
	}
}
