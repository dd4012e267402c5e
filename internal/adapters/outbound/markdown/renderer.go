package markdown

import (
	"fmt"
	"path"
	"strings"

	"github.com/featlint/featlint/internal/domain"
)

// Render formats an AuditReport as the Markdown compliance document.
// Output depends only on the report contents, so unchanged input
// renders byte-identically.
func Render(report *domain.AuditReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Composable Manifest: features/%s\n\n", report.Feature)
	fmt.Fprintf(&b, "> **Generated**: %s\n", report.GeneratedAt.Format("2006-01-02"))
	b.WriteString("> **Auditor**: featlint\n")
	if report.CommitHash != "" {
		fmt.Fprintf(&b, "> **Commit**: %s\n", shortHash(report.CommitHash))
	}
	fmt.Fprintf(&b, "> **Scope**: `/features/%s/` folder\n\n", report.Feature)
	b.WriteString("---\n\n")

	renderSummary(&b, report)
	renderRegistry(&b, report)
	renderDependencies(&b, report)
	renderMandates(&b, report)
	renderPerformance(&b, report)

	return b.String()
}

func renderSummary(b *strings.Builder, report *domain.AuditReport) {
	b.WriteString("## Executive Summary\n\n")
	b.WriteString("| Category | Status | Notes |\n")
	b.WriteString("|----------|--------|-------|\n")

	namingNote := "Clean"
	if report.Naming == domain.VerdictFail {
		namingNote = "Issues found"
	}
	fmt.Fprintf(b, "| Variable & Entity Registry | %s | %s |\n", report.Naming, namingNote)
	fmt.Fprintf(b, "| Dependency Manifest | %s | %d violations |\n", report.DependencyManifest, len(report.Bleed))
	fmt.Fprintf(b, "| Sacred Mandate | %s | Auth: %s |\n", report.SacredMandate, report.Mandates.AuthAbstraction)
	fmt.Fprintf(b, "| Performance | %s | Watch Usage: %s |\n", report.Performance, report.Performance)
	b.WriteString("\n")

	if len(report.Findings) > 0 {
		b.WriteString("**Issues Found:**\n")
		for _, f := range report.Findings {
			fmt.Fprintf(b, "- %s\n", f.Message)
		}
	} else {
		b.WriteString("**Overall Result: PASSED**\n")
	}
	b.WriteString("\n---\n\n")
}

func renderRegistry(b *strings.Builder, report *domain.AuditReport) {
	b.WriteString("## 1. Variable & Entity Registry\n\n")
	b.WriteString("### 1.1 Feature File Inventory\n")
	fmt.Fprintf(b, "**Total Files**: %d\n\n", len(report.Files))

	// Group by folder, preserving first-seen order of the sorted file list.
	var folders []string
	byFolder := make(map[string][]domain.SourceFile)
	for _, f := range report.Files {
		folder := path.Dir(f.RelPath)
		if _, seen := byFolder[folder]; !seen {
			folders = append(folders, folder)
		}
		byFolder[folder] = append(byFolder[folder], f)
	}

	for _, folder := range folders {
		fmt.Fprintf(b, "#### %s\n", folder)
		b.WriteString("| File | Lines |\n")
		b.WriteString("|------|-------|\n")
		for _, f := range byFolder[folder] {
			fmt.Fprintf(b, "| `%s` | %d |\n", f.Name, f.LineCount)
		}
		b.WriteString("\n")
	}

	b.WriteString("### 1.2 Entity Inventory\n")
	b.WriteString("| Name | Kind | File |\n")
	b.WriteString("|------|------|------|\n")
	for _, e := range report.Entities {
		fmt.Fprintf(b, "| `%s` | %s | `%s` |\n", e.Name, e.Kind, e.File)
	}
	b.WriteString("\n")
}

func renderDependencies(b *strings.Builder, report *domain.AuditReport) {
	b.WriteString("## 2. Dependency Manifest\n\n")
	b.WriteString("### 2.1 Feature Bleed Check\n")
	if len(report.Bleed) > 0 {
		b.WriteString("**Result: FAIL**\n\n")
		for _, f := range report.Bleed {
			fmt.Fprintf(b, "- %s\n", f.Message)
		}
	} else {
		b.WriteString("**Result: PASS**\n")
		b.WriteString("No prohibited cross-feature imports detected.\n")
	}
	b.WriteString("\n")

	b.WriteString("### 2.2 Transformer Usage\n")
	if len(report.Transformers) > 0 {
		b.WriteString("| File | Usage |\n")
		b.WriteString("|------|-------|\n")
		for _, f := range report.Transformers {
			fmt.Fprintf(b, "| `%s:%d` | %s |\n", f.File, f.Line, f.Message)
		}
	} else {
		b.WriteString("No explicit transformer imports found.\n")
	}
	b.WriteString("\n")
}

func renderMandates(b *strings.Builder, report *domain.AuditReport) {
	b.WriteString("## 3. Sacred Mandate Compliance\n\n")

	sections := []struct {
		title   string
		verdict domain.Verdict
		check   domain.CheckID
	}{
		{"Integer Cents", report.Mandates.IntegerCents, domain.CheckIntegerCents},
		{"Soft Deletes", report.Mandates.SoftDeletes, domain.CheckSoftDeletes},
		{"Auth Abstraction", report.Mandates.AuthAbstraction, domain.CheckAuthAbstraction},
	}

	for i, s := range sections {
		fmt.Fprintf(b, "### 3.%d %s\n", i+1, s.title)
		fmt.Fprintf(b, "**Status: %s**\n", s.verdict)
		if s.verdict == domain.VerdictFail || s.verdict == domain.VerdictWarning {
			for _, f := range report.FindingsFor(s.check) {
				fmt.Fprintf(b, "- %s\n", f.Message)
			}
		}
		b.WriteString("\n")
	}
}

func renderPerformance(b *strings.Builder, report *domain.AuditReport) {
	b.WriteString("## 4. Performance & Scalability\n\n")
	b.WriteString("### 4.1 Watch Usage Check\n")
	fmt.Fprintf(b, "**Status: %s**\n", report.Performance)
	if report.Performance == domain.VerdictFail {
		for _, f := range report.FindingsFor(domain.CheckWatchUsage) {
			fmt.Fprintf(b, "- %s\n", f.Message)
		}
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
