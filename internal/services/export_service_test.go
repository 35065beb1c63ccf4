package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"budget-planner/internal/config"
	"budget-planner/internal/export"
	"budget-planner/internal/ledger"
	"budget-planner/internal/models"
	"budget-planner/internal/repositories"
	"budget-planner/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const scenarioExport = "Date,Category,Amount\n2024-01-01,Food,10.0\n2024-01-02,Rent,500.0\n2024-01-03,food,5.5\n"

// ExportServiceTestSuite is the test suite for ExportService
type ExportServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	exportRepo *repository_mocks.MockExportRepositoryInterface
	ledger     LedgerServiceInterface
	exportDir  string
	service    ExportServiceInterface
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.exportRepo = repository_mocks.NewMockExportRepositoryInterface(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())

	s.ledger = NewLedgerService(ledger.New(), logger, metrics)
	s.exportDir = filepath.Join(s.T().TempDir(), "exports")
	s.service = NewExportService(s.ledger, s.exportRepo, &config.ExportConfig{
		Directory:        s.exportDir,
		DefaultExtension: ".csv",
	}, logger, metrics)
}

func (s *ExportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) addScenario() {
	_, err := s.ledger.AddTransaction(s.ctx, "2024-01-01", "Food", "10")
	s.Require().NoError(err)
	_, err = s.ledger.AddTransaction(s.ctx, "2024-01-02", "Rent", "500")
	s.Require().NoError(err)
	_, err = s.ledger.AddTransaction(s.ctx, "2024-01-03", "food", "5.5")
	s.Require().NoError(err)
}

func (s *ExportServiceTestSuite) TestExportToFile_DefaultExtension() {
	s.addScenario()

	result, err := s.service.ExportToFile(s.ctx, "budget")
	s.Require().NoError(err)

	s.Equal(filepath.Join(s.exportDir, "budget.csv"), result.Path)
	s.Equal(3, result.TransactionCount)

	content, err := os.ReadFile(result.Path)
	s.Require().NoError(err)
	s.Equal(scenarioExport, string(content))
}

func (s *ExportServiceTestSuite) TestExportToFile_KeepsGivenExtension() {
	result, err := s.service.ExportToFile(s.ctx, "budget.txt")
	s.Require().NoError(err)

	s.Equal(filepath.Join(s.exportDir, "budget.txt"), result.Path)
	content, err := os.ReadFile(result.Path)
	s.Require().NoError(err)
	s.Equal(export.DelimitedHeader+"\n", string(content))
}

func (s *ExportServiceTestSuite) TestExportToFile_RejectsEscapes() {
	for _, name := range []string{"", "   ", "../outside.csv", "nested/../../outside.csv", "/etc/passwd"} {
		_, err := s.service.ExportToFile(s.ctx, name)
		s.ErrorIs(err, ErrExportPathNotAllowed, name)
	}
}

func (s *ExportServiceTestSuite) TestExportToFile_Subdirectory() {
	result, err := s.service.ExportToFile(s.ctx, "2024/january")
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.exportDir, "2024", "january.csv"), result.Path)
	s.FileExists(result.Path)
}

func (s *ExportServiceTestSuite) TestWriteCSV() {
	s.addScenario()

	var out strings.Builder
	count, err := s.service.WriteCSV(s.ctx, &out)
	s.Require().NoError(err)

	s.Equal(3, count)
	s.Equal(scenarioExport, out.String())
}

func (s *ExportServiceTestSuite) TestExportToDatabase_Success() {
	s.addScenario()

	s.exportRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(batch *models.ExportBatch) error {
			s.Equal(3, batch.TransactionCount)
			s.True(batch.TotalAmount.Equal(decimal.RequireFromString("515.5")))
			s.Equal("Rent", batch.Transactions[1].Category)
			return nil
		})

	batch, err := s.service.ExportToDatabase(s.ctx)
	s.Require().NoError(err)
	s.Len(batch.Transactions, 3)
}

func (s *ExportServiceTestSuite) TestExportToDatabase_EmptyLedger() {
	_, err := s.service.ExportToDatabase(s.ctx)
	s.ErrorIs(err, ledger.ErrEmptyLedger)
}

func (s *ExportServiceTestSuite) TestExportToDatabase_RepositoryError() {
	s.addScenario()
	dbErr := errors.New("disk full")

	s.exportRepo.EXPECT().CreateBatch(gomock.Any()).Return(dbErr)

	_, err := s.service.ExportToDatabase(s.ctx)
	s.ErrorIs(err, dbErr)
}

func (s *ExportServiceTestSuite) TestGetExportBatch_NotFound() {
	id := uuid.New()
	s.exportRepo.EXPECT().GetBatch(id).Return(nil, repositories.ErrExportBatchNotFound)

	_, err := s.service.GetExportBatch(s.ctx, id)
	s.ErrorIs(err, repositories.ErrExportBatchNotFound)
}

func (s *ExportServiceTestSuite) TestListExportBatches_ClampsPaging() {
	s.exportRepo.EXPECT().ListBatches(0, DefaultExportListLimit).Return([]models.ExportBatch{}, int64(0), nil)
	s.exportRepo.EXPECT().ListBatches(5, MaxExportListLimit).Return([]models.ExportBatch{}, int64(0), nil)

	_, _, err := s.service.ListExportBatches(s.ctx, -1, 0)
	s.NoError(err)
	_, _, err = s.service.ListExportBatches(s.ctx, 5, 1000)
	s.NoError(err)
}

func (s *ExportServiceTestSuite) TestDatabaseDisabled() {
	service := NewExportService(s.ledger, nil, &config.ExportConfig{Directory: s.exportDir}, nil, nil)

	s.False(service.DatabaseEnabled())

	_, err := service.ExportToDatabase(s.ctx)
	s.ErrorIs(err, ErrExportUnavailable)
	_, err = service.GetExportBatch(s.ctx, uuid.New())
	s.ErrorIs(err, ErrExportUnavailable)
	_, _, err = service.ListExportBatches(s.ctx, 0, 10)
	s.ErrorIs(err, ErrExportUnavailable)
}

func (s *ExportServiceTestSuite) TestExportToDatabase_CircuitOpensAfterFailures() {
	s.addScenario()
	service := NewExportService(s.ledger, s.exportRepo, &config.ExportConfig{
		Directory:           s.exportDir,
		BreakerMaxFailures:  2,
		BreakerResetTimeout: time.Hour,
	}, nil, nil)

	s.exportRepo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("connection refused")).Times(2)

	for i := 0; i < 2; i++ {
		_, err := service.ExportToDatabase(s.ctx)
		s.Error(err)
		s.NotErrorIs(err, ErrExportUnavailable)
	}

	_, err := service.ExportToDatabase(s.ctx)
	s.ErrorIs(err, ErrExportUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
}
