package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	lineCommentRegex     = regexp.MustCompile(`--[^\n]*`)
)

// formatDBQueryForTrace puts a query on one line for span attributes.
func formatDBQueryForTrace(query string) string {
	query = lineCommentRegex.ReplaceAllString(query, " ")
	query = strings.TrimSpace(queryWhitespaceRegex.ReplaceAllString(query, " "))
	query = strings.TrimSuffix(query, ";")
	if len(query) <= maxTracedQueryLength {
		return query
	}
	return query[:maxTracedQueryLength] + "..."
}
