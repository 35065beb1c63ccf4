package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"budget-planner/internal/config"
	"budget-planner/internal/export"
	"budget-planner/internal/ledger"
	"budget-planner/internal/models"
	"budget-planner/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultExportListLimit = 20
	MaxExportListLimit     = 100
)

var (
	ErrExportPathNotAllowed = errors.New("export path must stay inside the export directory")
	ErrExportUnavailable    = errors.New("database export is unavailable")
)

// ExportService writes ledger snapshots to delimited files and to the snapshot database
type ExportService struct {
	ledger           LedgerServiceInterface
	repo             repositories.ExportRepositoryInterface
	breaker          *CircuitBreaker
	directory        string
	defaultExtension string
	logger           *slog.Logger
	metrics          MetricsRecorderInterface
}

// NewExportService creates an export service. A nil repo disables database exports.
func NewExportService(
	ledgerService LedgerServiceInterface,
	repo repositories.ExportRepositoryInterface,
	cfg *config.ExportConfig,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) ExportServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	breaker := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:  cfg.BreakerMaxFailures,
		ResetTimeout: cfg.BreakerResetTimeout,
	})

	return &ExportService{
		ledger:           ledgerService,
		repo:             repo,
		breaker:          breaker,
		directory:        cfg.Directory,
		defaultExtension: cfg.DefaultExtension,
		logger:           logger,
		metrics:          metrics,
	}
}

func (s *ExportService) DatabaseEnabled() bool {
	return s.repo != nil
}

// ExportToFile writes the ledger to filename inside the export directory.
// A filename without an extension gets the default one. An existing file is overwritten.
func (s *ExportService) ExportToFile(ctx context.Context, filename string) (*models.FileExport, error) {
	start := time.Now()

	path, err := s.resolvePath(filename)
	if err != nil {
		s.record(ctx, "file", start, err, slog.String("filename", filename))
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		err = fmt.Errorf("%w: %v", export.ErrExportIO, err)
		s.record(ctx, "file", start, err, slog.String("path", path))
		return nil, err
	}

	transactions := s.ledger.ListTransactions(ctx)
	if err := export.ExportDelimited(path, transactions); err != nil {
		s.record(ctx, "file", start, err, slog.String("path", path))
		return nil, err
	}

	s.record(ctx, "file", start, nil,
		slog.String("path", path),
		slog.Int("transaction_count", len(transactions)),
	)

	return &models.FileExport{
		Path:             path,
		TransactionCount: len(transactions),
	}, nil
}

// WriteCSV streams the delimited export to w and returns the number of rows written
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	start := time.Now()

	transactions := s.ledger.ListTransactions(ctx)
	if err := export.WriteDelimited(w, transactions); err != nil {
		s.record(ctx, "csv", start, err)
		return 0, err
	}

	s.record(ctx, "csv", start, nil, slog.Int("transaction_count", len(transactions)))
	return len(transactions), nil
}

// ExportToDatabase stores a snapshot of the current ledger as one export batch.
// Repeated storage failures open a circuit breaker and further exports are refused
// with ErrExportUnavailable until it resets.
func (s *ExportService) ExportToDatabase(ctx context.Context) (*models.ExportBatch, error) {
	if s.repo == nil {
		return nil, ErrExportUnavailable
	}
	start := time.Now()

	if s.breaker.IsOpen() {
		err := fmt.Errorf("%w: %w", ErrExportUnavailable, ErrCircuitBreakerOpen)
		s.record(ctx, "database", start, err)
		return nil, err
	}

	transactions := s.ledger.ListTransactions(ctx)
	if len(transactions) == 0 {
		s.record(ctx, "database", start, ledger.ErrEmptyLedger)
		return nil, ledger.ErrEmptyLedger
	}

	batch, err := models.NewExportBatch(transactions)
	if err != nil {
		s.record(ctx, "database", start, err)
		return nil, err
	}

	if err := s.repo.CreateBatch(batch); err != nil {
		s.recordStorageFailure(ctx)
		err = fmt.Errorf("failed to store export batch: %w", err)
		s.record(ctx, "database", start, err)
		return nil, err
	}
	s.breaker.RecordSuccess()
	s.recordBreakerState()

	s.record(ctx, "database", start, nil,
		slog.String("batch_id", batch.ID.String()),
		slog.Int("transaction_count", batch.TransactionCount),
	)

	return batch, nil
}

func (s *ExportService) GetExportBatch(ctx context.Context, id uuid.UUID) (*models.ExportBatch, error) {
	if s.repo == nil {
		return nil, ErrExportUnavailable
	}
	return s.repo.GetBatch(id)
}

func (s *ExportService) ListExportBatches(ctx context.Context, offset, limit int) ([]models.ExportBatch, int64, error) {
	if s.repo == nil {
		return nil, 0, ErrExportUnavailable
	}

	if limit <= 0 {
		limit = DefaultExportListLimit
	}
	if limit > MaxExportListLimit {
		limit = MaxExportListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.ListBatches(offset, limit)
}

func (s *ExportService) recordStorageFailure(ctx context.Context) {
	wasOpen := s.breaker.State() == StateOpen
	s.breaker.RecordFailure()

	if !wasOpen && s.breaker.State() == StateOpen {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "database export circuit opened",
			slog.Int("failures", s.breaker.FailureCount()),
			slog.String("trace_id", TraceIDFromContext(ctx)),
		)
	}
	s.recordBreakerState()
}

func (s *ExportService) recordBreakerState() {
	if s.metrics == nil {
		return
	}
	open := 0.0
	if s.breaker.State() == StateOpen {
		open = 1
	}
	s.metrics.RecordGauge(MetricExportCircuitOpen, open, nil)
}

// resolvePath confines filename to the export directory
func (s *ExportService) resolvePath(filename string) (string, error) {
	name := strings.TrimSpace(filename)
	if name == "" || filepath.IsAbs(name) {
		return "", ErrExportPathNotAllowed
	}

	if filepath.Ext(name) == "" && s.defaultExtension != "" {
		name += s.defaultExtension
	}

	root, err := filepath.Abs(s.directory)
	if err != nil {
		return "", fmt.Errorf("%w: %v", export.ErrExportIO, err)
	}

	path := filepath.Join(root, name)
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrExportPathNotAllowed
	}

	return path, nil
}

func (s *ExportService) record(ctx context.Context, target string, start time.Time, err error, attrs ...slog.Attr) {
	status := "success"
	level := slog.LevelInfo
	if err != nil {
		status = "failed"
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	duration := time.Since(start)
	attrs = append(attrs,
		slog.String("target", target),
		slog.String("status", status),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
	s.logger.LogAttrs(ctx, level, "ledger export", attrs...)

	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricExport, map[string]string{
			"target": target,
			"status": status,
		})
		s.metrics.RecordProcessingTime(MetricExportDuration+"."+target, duration)
	}
}
