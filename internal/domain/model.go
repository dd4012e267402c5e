package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// SourceFile is one collected source file of the audited feature.
// Immutable once loaded; checks only ever read it.
type SourceFile struct {
	Path      string   `json:"path"`
	RelPath   string   `json:"rel_path"`
	Name      string   `json:"name"`
	Content   string   `json:"-"`
	Lines     []string `json:"-"`
	LineCount int      `json:"line_count"`
}

// NewSourceFile builds a SourceFile from raw content. Lines are split so
// that a trailing newline does not produce an empty last line.
func NewSourceFile(path, relPath, name, content string) SourceFile {
	lines := SplitLines(content)
	return SourceFile{
		Path:      path,
		RelPath:   relPath,
		Name:      name,
		Content:   content,
		Lines:     lines,
		LineCount: len(lines),
	}
}

// SplitLines splits content into lines without a phantom empty line
// after a trailing newline.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// EntityKind is the declaration keyword an entity was detected from.
type EntityKind string

const (
	EntityInterface EntityKind = "interface"
	EntityTypeAlias EntityKind = "type"
	EntityClass     EntityKind = "class"
)

// Entity is a detected named declaration, reported in the entity
// inventory. Detection is textual, not semantic.
type Entity struct {
	Name string     `json:"name"`
	Kind EntityKind `json:"kind"`
	File string     `json:"file"`
}

// CheckID identifies the rule check a finding belongs to.
type CheckID string

const (
	CheckNaming          CheckID = "Naming"
	CheckFeatureBleed    CheckID = "FeatureBleed"
	CheckTransformers    CheckID = "Transformers"
	CheckIntegerCents    CheckID = "IntegerCents"
	CheckSoftDeletes     CheckID = "SoftDeletes"
	CheckAuthAbstraction CheckID = "AuthAbstraction"
	CheckWatchUsage      CheckID = "WatchUsage"
)

// Finding is a single detected violation (or informational note),
// tagged with the check that produced it.
type Finding struct {
	Check   CheckID `json:"check"`
	File    string  `json:"file,omitempty"`
	Line    int     `json:"line,omitempty"`
	Message string  `json:"message"`
}

func (f Finding) String() string { return f.Message }

// Verdict is the outcome of one check or category.
type Verdict string

const (
	VerdictPass          Verdict = "PASS"
	VerdictFail          Verdict = "FAIL"
	VerdictWarning       Verdict = "WARNING"
	VerdictNotApplicable Verdict = "N/A"
)

// MandateVerdicts holds the independent sacred-mandate sub-check results.
type MandateVerdicts struct {
	IntegerCents    Verdict `json:"integer_cents"`
	SoftDeletes     Verdict `json:"soft_deletes"`
	AuthAbstraction Verdict `json:"auth_abstraction"`
}

// AuditReport is the aggregate result of one feature audit.
type AuditReport struct {
	Feature     string    `json:"feature"`
	GeneratedAt time.Time `json:"generated_at"`
	CommitHash  string    `json:"commit_hash,omitempty"`
	Digest      string    `json:"digest"`

	Files    []SourceFile `json:"files"`
	Entities []Entity     `json:"entities"`

	Naming             Verdict `json:"naming"`
	DependencyManifest Verdict `json:"dependency_manifest"`
	SacredMandate      Verdict `json:"sacred_mandate"`
	Performance        Verdict `json:"performance"`

	Mandates MandateVerdicts `json:"mandates"`

	Bleed        []Finding `json:"feature_bleed"`
	Transformers []Finding `json:"transformers"`
	Findings     []Finding `json:"findings"`
}

// Passed reports whether no category failed. WARNING and N/A do not
// count against the feature.
func (r *AuditReport) Passed() bool {
	for _, v := range []Verdict{r.Naming, r.DependencyManifest, r.SacredMandate, r.Performance} {
		if v == VerdictFail {
			return false
		}
	}
	return true
}

// Result is the overall verdict shown in summaries and history.
func (r *AuditReport) Result() Verdict {
	if !r.Passed() {
		return VerdictFail
	}
	if r.SacredMandate == VerdictWarning {
		return VerdictWarning
	}
	return VerdictPass
}

// FindingsFor returns the findings produced by one check, preserving
// execution order.
func (r *AuditReport) FindingsFor(check CheckID) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Check == check {
			out = append(out, f)
		}
	}
	return out
}

// Fingerprint hashes the collected file set. Identical input produces
// an identical digest, which backs the idempotence guarantee recorded
// in audit history.
func Fingerprint(files []SourceFile) string {
	h := xxhash.New()
	for _, f := range files {
		_, _ = h.WriteString(f.RelPath)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(f.Content)
		_, _ = h.WriteString("\x00")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// AuditEntry is one historical audit record.
type AuditEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Feature    string `json:"feature"`
	Digest     string `json:"digest"`
	Result     string `json:"result"`
	Findings   int    `json:"findings"`
}
