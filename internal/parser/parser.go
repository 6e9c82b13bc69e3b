package parser

import "caselists/internal/domain"

// Parser reads the case names out of a case-list file
type Parser interface {
	ReadCases(path string, caseListType domain.CaseListType) ([]string, error)
}
