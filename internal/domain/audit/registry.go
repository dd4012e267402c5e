package audit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/featlint/featlint/internal/domain"
)

// Declaration patterns are textual: a commented-out or nested
// declaration is recorded like a live top-level one.
var (
	entityRe    = regexp.MustCompile(`(export )?(interface|type|class) ([A-Za-z0-9]+)`)
	snakePropRe = regexp.MustCompile(`(?m)^\s*([a-z]+_[a-z0-9_]*)\??\s*:`)
)

// RegisterEntities scans every file for interface/type/class declarations
// and, in domain files, for snake_case typed properties. The entity list
// is inventory only; naming violations determine the category verdict.
func RegisterEntities(files []domain.SourceFile) ([]domain.Entity, []domain.Finding) {
	var entities []domain.Entity
	var violations []domain.Finding

	for _, file := range files {
		if strings.Contains(file.RelPath, "domain") {
			for _, m := range snakePropRe.FindAllStringSubmatch(file.Content, -1) {
				violations = append(violations, domain.Finding{
					Check:   domain.CheckNaming,
					File:    file.RelPath,
					Message: fmt.Sprintf("Snake_case property '%s' in domain file %s", m[1], file.RelPath),
				})
			}
		}

		for _, m := range entityRe.FindAllStringSubmatch(file.Content, -1) {
			entities = append(entities, domain.Entity{
				Name: m[3],
				Kind: domain.EntityKind(m[2]),
				File: file.RelPath,
			})
		}
	}

	return entities, violations
}
