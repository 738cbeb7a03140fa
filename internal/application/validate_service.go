// Package application wires the acquisition paths into the validator
// and shapes every failure into a report the renderer can display.
package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/addonlint/internal/adapters/outbound/share"
	"github.com/abdidvp/addonlint/internal/domain"
)

// ValidateService funnels text, files, URLs, and share links into the
// two-pass manifest validator.
type ValidateService struct {
	validator domain.ManifestValidator
	fetcher   domain.ManifestFetcher
	share     domain.ShareCodec
	history   domain.ReportHistory
	git       domain.GitInfo
	cfg       domain.ToolConfig
}

// NewValidateService creates a ValidateService. history and git may be
// nil when recording is disabled.
func NewValidateService(
	validator domain.ManifestValidator,
	fetcher domain.ManifestFetcher,
	shareCodec domain.ShareCodec,
	history domain.ReportHistory,
	git domain.GitInfo,
	cfg domain.ToolConfig,
) *ValidateService {
	return &ValidateService{
		validator: validator, fetcher: fetcher, share: shareCodec,
		history: history, git: git, cfg: cfg,
	}
}

// ValidateInput dispatches on the input's shape: URLs carrying a share
// payload are decoded, other URLs fetched, and everything else treated
// as a file path.
func (s *ValidateService) ValidateInput(ctx context.Context, input string) (*domain.Report, error) {
	switch {
	case isURL(input) && share.IsShareLink(input):
		return s.ValidateShareLink(input)
	case isURL(input):
		return s.ValidateURL(ctx, input)
	default:
		return s.ValidateFile(ctx, input)
	}
}

// ValidateAll validates every input concurrently, preserving order.
func (s *ValidateService) ValidateAll(ctx context.Context, inputs []string) ([]*domain.Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	reports := make([]*domain.Report, len(inputs))

	for i, input := range inputs {
		g.Go(func() error {
			report, err := s.ValidateInput(ctx, input)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// ValidateText validates manifest text directly.
func (s *ValidateService) ValidateText(source string, kind domain.SourceKind, text string) (*domain.Report, error) {
	outcome, err := s.validator.Validate([]byte(text))
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Source:    source,
		Kind:      kind,
		Pretty:    Format(text),
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	}
	s.record(report, "")
	return report, nil
}

// ValidateFile reads and validates a local manifest file. Read failures
// normalize into an Invalid report, like every other acquisition error.
func (s *ValidateService) ValidateFile(ctx context.Context, path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		report := s.failure(path, domain.SourceFile, domain.Issue{
			Code:    domain.CodeReadError,
			Message: fmt.Sprintf("reading file: %v", err),
		})
		return report, nil
	}

	outcome, err := s.validator.Validate(data)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Source:    path,
		Kind:      domain.SourceFile,
		Pretty:    Format(string(data)),
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	}
	s.record(report, filepath.Dir(path))
	return report, nil
}

// ValidateURL fetches a manifest and validates the body. Network and
// status failures become fetch_error issues.
func (s *ValidateService) ValidateURL(ctx context.Context, url string) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeoutDuration())
	defer cancel()

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		report := s.failure(url, domain.SourceURL, domain.Issue{
			Code:    domain.CodeFetchError,
			Message: err.Error(),
		})
		return report, nil
	}

	outcome, err := s.validator.Validate(body)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Source:    url,
		Kind:      domain.SourceURL,
		Pretty:    Format(string(body)),
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	}
	s.record(report, "")
	return report, nil
}

// ValidateShareLink restores the text embedded in a share link and
// validates it, mirroring the on-load auto-validation of the hosted
// validator.
func (s *ValidateService) ValidateShareLink(link string) (*domain.Report, error) {
	text, err := s.share.DecodeLink(link)
	if err != nil {
		report := s.failure(link, domain.SourceShare, domain.Issue{
			Code:    domain.CodeShareLinkError,
			Message: err.Error(),
		})
		return report, nil
	}
	return s.ValidateText(link, domain.SourceShare, text)
}

// ShareLink encodes manifest text into a shareable link.
func (s *ValidateService) ShareLink(text string) (string, error) {
	return s.share.EncodeLink(text)
}

// DecodeShareLink restores the text embedded in a share link.
func (s *ValidateService) DecodeShareLink(link string) (string, error) {
	return s.share.DecodeLink(link)
}

func (s *ValidateService) failure(source string, kind domain.SourceKind, issue domain.Issue) *domain.Report {
	report := &domain.Report{
		Source:    source,
		Kind:      kind,
		Outcome:   domain.Invalid(issue),
		Timestamp: time.Now().UTC(),
	}
	s.record(report, "")
	return report
}

// record appends the run to history. History failures never fail a
// validation run.
func (s *ValidateService) record(report *domain.Report, fileDir string) {
	if !s.cfg.History || s.history == nil {
		return
	}

	entry := domain.HistoryEntry{
		Source:    report.Source,
		Kind:      report.Kind,
		Status:    report.Outcome.Status,
		Errors:    report.Outcome.Errors(),
		Warnings:  report.Outcome.Warnings(),
		Timestamp: report.Timestamp,
	}

	if fileDir != "" && s.git != nil && s.git.IsGitRepo(fileDir) {
		if hash, err := s.git.CommitHash(fileDir); err == nil {
			entry.CommitHash = hash
		}
	}

	_ = s.history.Save(entry)
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
