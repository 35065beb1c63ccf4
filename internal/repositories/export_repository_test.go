package repositories

import (
	"testing"
	"time"

	"budget-planner/internal/database"
	"budget-planner/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ExportRepositoryTestSuite is the test suite for the export repository
type ExportRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo ExportRepositoryInterface
}

// SetupTest runs before each test
func (s *ExportRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExportRepository(s.db.DB)
}

// TestExportRepositoryTestSuite runs the test suite
func TestExportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExportRepositoryTestSuite))
}

func (s *ExportRepositoryTestSuite) newBatch(n int) *models.ExportBatch {
	transactions := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		transactions = append(transactions, models.Transaction{
			ID:       uuid.New(),
			Position: i,
			Date:     gofakeit.Date().Format("2006-01-02"),
			Category: gofakeit.RandomString([]string{"Food", "Rent", "Travel"}),
			Amount:   decimal.NewFromInt(int64(gofakeit.Number(1, 500))),
		})
	}

	batch, err := models.NewExportBatch(transactions)
	require.NoError(s.T(), err)
	return batch
}

func (s *ExportRepositoryTestSuite) TestCreateBatch_StoresHeaderAndRows() {
	batch := s.newBatch(3)

	err := s.repo.CreateBatch(batch)
	require.NoError(s.T(), err)

	var rows int64
	require.NoError(s.T(), s.db.Model(&models.ExportedTransaction{}).Where("batch_id = ?", batch.ID).Count(&rows).Error)
	assert.Equal(s.T(), int64(3), rows)
	assert.False(s.T(), batch.CreatedAt.IsZero())
}

func (s *ExportRepositoryTestSuite) TestCreateBatch_Nil() {
	err := s.repo.CreateBatch(nil)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "export batch cannot be nil")
}

func (s *ExportRepositoryTestSuite) TestCreateBatch_Empty() {
	err := s.repo.CreateBatch(&models.ExportBatch{})
	assert.ErrorIs(s.T(), err, models.ErrEmptyExportBatch)
}

func (s *ExportRepositoryTestSuite) TestGetBatch_RowsInLedgerOrder() {
	batch := s.newBatch(5)
	// store rows out of order to prove the read sorts them
	batch.Transactions[0], batch.Transactions[4] = batch.Transactions[4], batch.Transactions[0]
	require.NoError(s.T(), s.repo.CreateBatch(batch))

	found, err := s.repo.GetBatch(batch.ID)
	require.NoError(s.T(), err)

	require.Len(s.T(), found.Transactions, 5)
	for i, row := range found.Transactions {
		assert.Equal(s.T(), i, row.Position)
	}
	assert.True(s.T(), batch.TotalAmount.Equal(found.TotalAmount))
	assert.Equal(s.T(), 5, found.TransactionCount)
}

func (s *ExportRepositoryTestSuite) TestGetBatch_NotFound() {
	_, err := s.repo.GetBatch(uuid.New())
	assert.ErrorIs(s.T(), err, ErrExportBatchNotFound)
}

func (s *ExportRepositoryTestSuite) TestListBatches_NewestFirstWithTotal() {
	older := s.newBatch(1)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(s.T(), s.repo.CreateBatch(older))

	newer := s.newBatch(2)
	require.NoError(s.T(), s.repo.CreateBatch(newer))

	batches, total, err := s.repo.ListBatches(0, 10)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), int64(2), total)
	require.Len(s.T(), batches, 2)
	assert.Equal(s.T(), newer.ID, batches[0].ID)
	assert.Equal(s.T(), older.ID, batches[1].ID)
	assert.Empty(s.T(), batches[0].Transactions)
}

func (s *ExportRepositoryTestSuite) TestListBatches_Pagination() {
	for i := 0; i < 3; i++ {
		require.NoError(s.T(), s.repo.CreateBatch(s.newBatch(1)))
	}

	batches, total, err := s.repo.ListBatches(2, 10)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), int64(3), total)
	assert.Len(s.T(), batches, 1)
}
