package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL asks lib/pq to read prepared statement results as text,
// which keeps the pick log usable behind transaction poolers.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	values := parsed.Query()
	if values.Get("disable_prepared_binary_result") == "" {
		values.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = values.Encode()
	}
	return parsed.String()
}

// dbNameFromURL accepts both URL and key=value connection strings.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(strings.TrimSpace(name), `"'`); name != "" {
			return name
		}
	}
	return ""
}

// redactDBURL hides the password of a URL style connection string.
func redactDBURL(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" {
		return "<redacted>"
	}
	return parsed.Redacted()
}

// MigrationDatabaseURL is the DB_URL form handed to golang-migrate.
func MigrationDatabaseURL(raw string, disablePreparedBinaryResult bool) string {
	return normalizeDBURL(strings.TrimSpace(raw), disablePreparedBinaryResult)
}
