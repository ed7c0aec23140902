package storage

import (
	"github.com/renato0307/arlon/internal/domain"
)

// comparisonRunModelToDomain converts a ComparisonRunModel (GORM) to domain.ComparisonRun
func comparisonRunModelToDomain(m ComparisonRunModel) domain.ComparisonRun {
	return domain.ComparisonRun{
		Branch:      m.Branch,
		ID:          m.ID,
		Kind:        domain.ComparisonKind(m.Kind),
		RanAt:       m.RanAt.UTC(),
		RepoPath:    m.RepoPath,
		ResultCount: m.ResultCount,
	}
}

// domainToComparisonRunModel converts a domain.ComparisonRun to ComparisonRunModel (GORM)
func domainToComparisonRunModel(r domain.ComparisonRun) ComparisonRunModel {
	return ComparisonRunModel{
		Branch:      r.Branch,
		ID:          r.ID,
		Kind:        string(r.Kind),
		RanAt:       r.RanAt.UTC(),
		RepoPath:    r.RepoPath,
		ResultCount: r.ResultCount,
	}
}
