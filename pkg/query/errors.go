package query

import "errors"

// Configuration errors. These indicate a programming mistake in the calling
// repository and are surfaced immediately, unlike malformed request input
// which is silently dropped.
var (
	ErrFormatterNotSearchable = errors.New("query: formatter registered for a field outside the searchable whitelist")
	ErrMissingSQL             = errors.New("query: raw statement requires SQL")
	ErrMissingColumns         = errors.New("query: raw data statement requires columns")
)
