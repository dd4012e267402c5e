package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/featlint/featlint/internal/domain"
)

var importPathRe = regexp.MustCompile(`from ['"]([^'"]+)['"]`)

// Cross-feature import prefixes the auditor recognizes. Alternate
// aliases and deeper relative nesting pass silently.
var featurePrefixes = []string{"@/features/", "../../features/"}

var transformerMarkers = []string{"types/data-transformers", "data/data-transformers"}

// CheckDependencies inspects import lines for prohibited cross-feature
// references. A feature may import from itself and from the shared
// layer only. Transformer usage is returned separately as informational
// inventory and never affects verdicts.
func CheckDependencies(files []domain.SourceFile, feature, shared string) (bleed, transformers []domain.Finding) {
	for _, file := range files {
		for i, line := range file.Lines {
			if !strings.HasPrefix(strings.TrimSpace(line), "import ") {
				continue
			}
			m := importPathRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			path := m[1]

			if target, ok := crossFeatureTarget(path); ok && target != feature && target != shared {
				bleed = append(bleed, domain.Finding{
					Check:   domain.CheckFeatureBleed,
					File:    file.RelPath,
					Line:    i + 1,
					Message: fmt.Sprintf("Import from %s in %s:%d", target, file.RelPath, i+1),
				})
			}

			for _, marker := range transformerMarkers {
				if strings.Contains(path, marker) {
					transformers = append(transformers, domain.Finding{
						Check:   domain.CheckTransformers,
						File:    file.RelPath,
						Line:    i + 1,
						Message: fmt.Sprintf("Uses data-transformers in %s:%d", file.RelPath, i+1),
					})
					break
				}
			}
		}
	}
	return bleed, transformers
}

// crossFeatureTarget extracts the feature name an import points into,
// for the recognized prefixes only.
func crossFeatureTarget(path string) (string, bool) {
	for _, prefix := range featurePrefixes {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := path[strings.Index(path, "features/")+len("features/"):]
		target, _, _ := strings.Cut(rest, "/")
		return target, target != ""
	}
	return "", false
}
