package parser

import "fto/internal/domain"

// Parser parses suite harness output and extracts failures
type Parser interface {
	ParseFailures(result domain.SuiteResult) []domain.Failure
}
