package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/featlint/featlint/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	naStyle       = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSummary renders the audit result as a styled terminal summary.
func RenderSummary(report *domain.AuditReport) string {
	var b strings.Builder

	title := headerStyle.Render("featlint")
	subtitle := dimStyle.Render("Feature Compliance Audit")
	result := report.Result()
	resultStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(result)).
		Render(string(result))

	featureLine := titleStyle.Render("features/"+report.Feature) + "  " + resultStyled
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + featureLine))
	b.WriteString("\n\n")

	renderCategory(&b, "Variable & Entity Registry", report.Naming)
	renderCategory(&b, "Dependency Manifest", report.DependencyManifest)
	renderCategory(&b, "Sacred Mandate", report.SacredMandate)
	renderSubVerdict(&b, "Integer Cents", report.Mandates.IntegerCents)
	renderSubVerdict(&b, "Soft Deletes", report.Mandates.SoftDeletes)
	renderSubVerdict(&b, "Auth Abstraction", report.Mandates.AuthAbstraction)
	renderCategory(&b, "Performance", report.Performance)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	if len(report.Findings) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Findings"))
		b.WriteString("  ")
		b.WriteString(failStyle.Render(fmt.Sprintf("%d", len(report.Findings))))
		b.WriteString("\n\n")
		for _, f := range report.Findings {
			renderFinding(&b, f)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, name string, v domain.Verdict) {
	fmt.Fprintf(b, "  %s %s %s\n",
		verdictIcon(v),
		catNameStyle.Render(padRight(name, 28)),
		verdictStyle(v).Render(string(v)),
	)
}

func renderSubVerdict(b *strings.Builder, name string, v domain.Verdict) {
	fmt.Fprintf(b, "    %s %s %s\n",
		verdictIcon(v),
		dimStyle.Render(padRight(name, 26)),
		verdictStyle(v).Render(string(v)),
	)
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	tag := warnStyle.Render(padRight(HumanizeCheck(f.Check), 16))
	if f.File != "" {
		loc := f.File
		if f.Line > 0 {
			loc = fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		fmt.Fprintf(b, "    %s %s\n", tag, fileStyle.Render(loc))
		fmt.Fprintf(b, "    %s %s\n", strings.Repeat(" ", 16), dimStyle.Render(f.Message))
	} else {
		fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render(f.Message))
	}
}

// HumanizeCheck turns a CheckID like "IntegerCents" into "Integer Cents".
func HumanizeCheck(id domain.CheckID) string {
	return strings.Join(camelcase.Split(string(id)), " ")
}

func verdictIcon(v domain.Verdict) string {
	switch v {
	case domain.VerdictPass:
		return passStyle.Render("●")
	case domain.VerdictFail:
		return failStyle.Render("●")
	case domain.VerdictWarning:
		return warnStyle.Render("●")
	default:
		return naStyle.Render("○")
	}
}

func verdictStyle(v domain.Verdict) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(verdictColor(v))
}

func verdictColor(v domain.Verdict) lipgloss.Color {
	switch v {
	case domain.VerdictPass:
		return success
	case domain.VerdictFail:
		return danger
	case domain.VerdictWarning:
		return warning
	default:
		return info
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats past audit entries for terminal output.
func RenderHistory(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Audit History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		resultStyled := lipgloss.NewStyle().
			Foreground(verdictColor(domain.Verdict(e.Result))).
			Render(padRight(e.Result, 7))

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			resultStyled,
			titleStyle.Render(e.Feature),
			dimStyle.Render(fmt.Sprintf("%d findings", e.Findings)),
		)
	}

	return b.String()
}
