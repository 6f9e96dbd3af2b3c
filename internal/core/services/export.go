package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driven"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driving"
	"github.com/custodia-labs/bucketlist/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// DefaultExportInterval is the minimum spacing between two exports.
// It absorbs key repeat on the export binding.
const DefaultExportInterval = 500 * time.Millisecond

// ExportService renders form snapshots and saves them.
type ExportService struct {
	renderers map[domain.ExportFormat]driven.Renderer
	saver     driven.FileSaver
	history   driven.ExportHistory
	clock     *monotonicClock
	limiter   *rate.Limiter
}

// NewExportService creates an export service. History may be nil.
func NewExportService(
	saver driven.FileSaver,
	history driven.ExportHistory,
	renderers ...driven.Renderer,
) *ExportService {
	byFormat := make(map[domain.ExportFormat]driven.Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}

	return &ExportService{
		renderers: byFormat,
		saver:     saver,
		history:   history,
		clock:     newMonotonicClock(time.Now),
		limiter:   rate.NewLimiter(rate.Every(DefaultExportInterval), 1),
	}
}

// WithClock replaces the wall clock used for filenames.
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	s.clock = newMonotonicClock(now)
	return s
}

// WithMinInterval sets the minimum spacing between exports.
// Zero disables throttling.
func (s *ExportService) WithMinInterval(d time.Duration) *ExportService {
	if d <= 0 {
		s.limiter = rate.NewLimiter(rate.Inf, 1)
		return s
	}
	s.limiter = rate.NewLimiter(rate.Every(d), 1)
	return s
}

// Export renders the snapshot and saves it under
// "<list name>_<timestamp>.<ext>" in the output directory.
func (s *ExportService) Export(
	ctx context.Context, state domain.FormState, opts domain.ExportOptions,
) (*domain.ExportResult, error) {
	if !s.limiter.Allow() {
		logger.Warn("export throttled", "format", opts.Format)
		return nil, domain.ErrExportThrottled
	}

	logger.Section("Export")
	logger.Debug("rendering export", "format", opts.Format, "blank", opts.Blank)

	data, err := s.render(state, opts)
	if err != nil {
		logger.Error("export render failed", "format", opts.Format, "error", err)
		return nil, fmt.Errorf("export %s: %w", opts.Format, err)
	}

	created := s.clock.Now()
	name := Filename(opts.ListName, opts.Format, created)

	path, err := s.saver.Save(ctx, opts.OutputDir, name, data)
	if err != nil {
		logger.Error("export save failed", "file", name, "dir", opts.OutputDir, "error", err)
		return nil, fmt.Errorf("export %s: %w: %w", opts.Format, domain.ErrSaveFailed, err)
	}

	result := &domain.ExportResult{
		ID:        uuid.New().String(),
		Format:    opts.Format,
		Filename:  name,
		Path:      path,
		MIMEType:  s.renderers[opts.Format].MIMEType(opts),
		Size:      len(data),
		CreatedAt: created,
	}
	if s.history != nil {
		s.history.Record(*result)
	}

	logger.Info("export saved", "id", result.ID, "path", path, "bytes", result.Size)
	return result, nil
}

// Preview renders the snapshot without saving it.
func (s *ExportService) Preview(state domain.FormState, opts domain.ExportOptions) ([]byte, error) {
	return s.render(state, opts)
}

// History returns the exports made during this session, oldest first.
func (s *ExportService) History() []domain.ExportResult {
	if s.history == nil {
		return nil
	}
	return s.history.List()
}

// render builds and renders the document. A panicking renderer is
// reported as domain.ErrRenderFailed.
func (s *ExportService) render(state domain.FormState, opts domain.ExportOptions) (data []byte, err error) {
	r, ok := s.renderers[opts.Format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, opts.Format)
	}

	defer func() {
		if p := recover(); p != nil {
			data = nil
			err = fmt.Errorf("%w: %v", domain.ErrRenderFailed, p)
		}
	}()

	doc := domain.BuildDocument(state, opts.Blank, opts.Title, opts.Placeholder)
	return r.Render(doc, opts)
}

// Filename returns the export filename for a list at time t.
func Filename(listName string, format domain.ExportFormat, t time.Time) string {
	return SanitizeListName(listName) + "_" + FileTimestamp(t) + "." + format.Extension()
}

// SanitizeListName makes a list name safe to use as a filename stem on
// every common filesystem. An unusable name falls back to the default.
func SanitizeListName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`<>:"/\|?*`, r):
			return '_'
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, name)

	cleaned = strings.Trim(cleaned, " .")
	if cleaned == "" {
		return domain.DefaultListName
	}
	return cleaned
}
