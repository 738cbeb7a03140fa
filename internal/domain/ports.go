package domain

import "context"

// ManifestValidator runs a raw JSON document through the manifest schema
// and shapes the result into one of the three outcome variants.
type ManifestValidator interface {
	Validate(data []byte) (*Outcome, error)
}

// ManifestFetcher retrieves a manifest body from a URL.
type ManifestFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ShareCodec turns manifest text into a shareable link and back.
type ShareCodec interface {
	EncodeLink(text string) (string, error)
	DecodeLink(link string) (string, error)
}

// ReportHistory persists validation runs.
type ReportHistory interface {
	Save(entry HistoryEntry) error
	Load() ([]HistoryEntry, error)
}

// GitInfo inspects the repository a validated file lives in.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// ConfigLoader reads the tool configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (ToolConfig, error)
}
