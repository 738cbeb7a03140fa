package domain

import "time"

// Status is the tagged variant of a validation outcome.
type Status string

const (
	// StatusValid means the document conforms to the manifest schema with
	// no undeclared fields.
	StatusValid Status = "valid"
	// StatusWarnings means the document conforms but carries fields the
	// schema does not declare.
	StatusWarnings Status = "warnings"
	// StatusInvalid means the document failed the permissive schema pass,
	// or never reached it (empty input, parse failure, fetch failure).
	StatusInvalid Status = "invalid"
)

// Issue categories. Schema-derived codes map one-to-one onto JSON Schema
// keywords; the acquisition codes cover failures before validation runs.
const (
	CodeRequired     = "required"
	CodeType         = "type"
	CodeEnum         = "enum"
	CodePattern      = "pattern"
	CodeFormat       = "format"
	CodeMinItems     = "min_items"
	CodeMinLength    = "min_length"
	CodeUnknownField = "unknown_field"
	CodeSchema       = "schema"

	CodeEmptyInput     = "empty_input"
	CodeParseError     = "parse_error"
	CodeReadError      = "read_error"
	CodeFetchError     = "fetch_error"
	CodeShareLinkError = "share_link_error"
)

// Issue is one problem found in (or while acquiring) a manifest.
type Issue struct {
	// Code is a stable machine-readable category.
	Code string `json:"code"`
	// Path locates the offending field, dotted with [i] array indices.
	// Empty means the whole document.
	Path string `json:"path,omitempty"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Suggestion names a declared field the unknown one likely meant.
	Suggestion string `json:"suggestion,omitempty"`
}

// Outcome is the result of running a document through the validator.
// Exactly one of the three variants holds:
//   - StatusInvalid: Issues set, Manifest nil
//   - StatusWarnings: Issues set (one per unknown field), Manifest set
//   - StatusValid: Manifest set, Issues empty
type Outcome struct {
	Status   Status    `json:"status"`
	Issues   []Issue   `json:"issues,omitempty"`
	Manifest *Manifest `json:"manifest,omitempty"`
}

// Invalid builds an Invalid outcome from the given issues.
func Invalid(issues ...Issue) *Outcome {
	return &Outcome{Status: StatusInvalid, Issues: issues}
}

// Errors reports how many issues are validation errors (as opposed to
// unknown-field warnings).
func (o *Outcome) Errors() int {
	if o.Status != StatusInvalid {
		return 0
	}
	return len(o.Issues)
}

// Warnings reports how many unknown-field warnings the outcome carries.
func (o *Outcome) Warnings() int {
	if o.Status != StatusWarnings {
		return 0
	}
	return len(o.Issues)
}

// Report wraps an outcome with where the input came from and what was
// actually validated, ready for rendering and history.
type Report struct {
	// Source is the file path, URL, or "stdin"/"text" label.
	Source string `json:"source"`
	// Kind is how the input was acquired: text, file, url, or share.
	Kind SourceKind `json:"kind"`
	// Pretty is the two-space-indented form of the input when it parsed
	// as JSON, otherwise the raw text.
	Pretty string `json:"-"`

	Outcome   *Outcome  `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}

// SourceKind tags the acquisition path of a report.
type SourceKind string

const (
	SourceText  SourceKind = "text"
	SourceFile  SourceKind = "file"
	SourceURL   SourceKind = "url"
	SourceShare SourceKind = "share"
)

// HistoryEntry is the persisted record of one validation run.
type HistoryEntry struct {
	ID         string     `json:"id"`
	Source     string     `json:"source"`
	Kind       SourceKind `json:"kind"`
	Status     Status     `json:"status"`
	Errors     int        `json:"errors"`
	Warnings   int        `json:"warnings"`
	CommitHash string     `json:"commit_hash,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}
