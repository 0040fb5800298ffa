package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"creditledger/internal/models"
	"creditledger/internal/repositories/cache"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

type MockCache struct {
	mock.Mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

var reportDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestService_GetSystemDailyReport_CacheMissPopulates(t *testing.T) {
	store := new(MockStore)
	cacheMock := new(MockCache)

	cacheMock.On("Get", mock.Anything, cache.DailyAmountKey(reportDate), mock.Anything).
		Return(false, nil)
	cacheMock.On("Get", mock.Anything, cache.DailyCountKey(reportDate), mock.Anything).
		Return(false, nil)
	store.On("SumAmountByDate", mock.Anything, reportDate).Return(150.5, nil)
	store.On("CountByDate", mock.Anything, reportDate).Return(int64(3), nil)
	cacheMock.On("SetWithTTL", mock.Anything, cache.DailyAmountKey(reportDate), 150.5, AmountCacheTTL).
		Return(nil)
	cacheMock.On("SetWithTTL", mock.Anything, cache.DailyCountKey(reportDate), int64(3), CountCacheTTL).
		Return(nil)

	s := NewService(store, cacheMock, testLogger())
	rep, err := s.GetSystemDailyReport(context.Background(), reportDate)

	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01", rep.Date)
	assert.Equal(t, 150.5, rep.TotalAmount)
	assert.Equal(t, int64(3), rep.TotalTransactionCount)
	store.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestService_GetSystemDailyReport_CacheHitSkipsStore(t *testing.T) {
	store := new(MockStore)
	cacheMock := new(MockCache)

	cacheMock.On("Get", mock.Anything, cache.DailyAmountKey(reportDate), mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(2).(*float64)) = 150.5
		}).
		Return(true, nil)
	cacheMock.On("Get", mock.Anything, cache.DailyCountKey(reportDate), mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(2).(*int64)) = 3
		}).
		Return(true, nil)

	s := NewService(store, cacheMock, testLogger())
	rep, err := s.GetSystemDailyReport(context.Background(), reportDate)

	assert.NoError(t, err)
	assert.Equal(t, 150.5, rep.TotalAmount)
	assert.Equal(t, int64(3), rep.TotalTransactionCount)
	store.AssertNotCalled(t, "SumAmountByDate", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "CountByDate", mock.Anything, mock.Anything)
}

func TestService_GetSystemDailyReport_SecondReadServedFromCache(t *testing.T) {
	store := new(MockStore)
	cacheMock := new(MockCache)

	// First read misses and populates, second read hits.
	cacheMock.On("Get", mock.Anything, cache.DailyAmountKey(reportDate), mock.Anything).
		Return(false, nil).Once()
	cacheMock.On("Get", mock.Anything, cache.DailyCountKey(reportDate), mock.Anything).
		Return(false, nil).Once()
	store.On("SumAmountByDate", mock.Anything, reportDate).Return(99.0, nil).Once()
	store.On("CountByDate", mock.Anything, reportDate).Return(int64(2), nil).Once()
	cacheMock.On("SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Twice()

	cacheMock.On("Get", mock.Anything, cache.DailyAmountKey(reportDate), mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(2).(*float64)) = 99.0
		}).
		Return(true, nil)
	cacheMock.On("Get", mock.Anything, cache.DailyCountKey(reportDate), mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(2).(*int64)) = 2
		}).
		Return(true, nil)

	s := NewService(store, cacheMock, testLogger())

	first, err := s.GetSystemDailyReport(context.Background(), reportDate)
	assert.NoError(t, err)
	second, err := s.GetSystemDailyReport(context.Background(), reportDate)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	store.AssertNumberOfCalls(t, "SumAmountByDate", 1)
	store.AssertNumberOfCalls(t, "CountByDate", 1)
}

func TestService_GetSystemDailyReport_CachedZeroIsAHit(t *testing.T) {
	store := new(MockStore)
	cacheMock := new(MockCache)

	// A legitimately cached zero must not be conflated with a miss.
	cacheMock.On("Get", mock.Anything, cache.DailyAmountKey(reportDate), mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(2).(*float64)) = 0
		}).
		Return(true, nil)
	cacheMock.On("Get", mock.Anything, cache.DailyCountKey(reportDate), mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(2).(*int64)) = 0
		}).
		Return(true, nil)

	s := NewService(store, cacheMock, testLogger())
	rep, err := s.GetSystemDailyReport(context.Background(), reportDate)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, rep.TotalAmount)
	assert.Equal(t, int64(0), rep.TotalTransactionCount)
	store.AssertNotCalled(t, "SumAmountByDate", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "CountByDate", mock.Anything, mock.Anything)
}

func TestService_GetSystemDailyReport_CacheFailureFallsThrough(t *testing.T) {
	store := new(MockStore)
	cacheMock := new(MockCache)

	cacheMock.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("redis down"))
	store.On("SumAmountByDate", mock.Anything, reportDate).Return(10.0, nil)
	store.On("CountByDate", mock.Anything, reportDate).Return(int64(1), nil)
	cacheMock.On("SetWithTTL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	s := NewService(store, cacheMock, testLogger())
	rep, err := s.GetSystemDailyReport(context.Background(), reportDate)

	assert.NoError(t, err)
	assert.Equal(t, 10.0, rep.TotalAmount)
	assert.Equal(t, int64(1), rep.TotalTransactionCount)
}

func TestService_GetUserDailyReport(t *testing.T) {
	store := new(MockStore)
	cacheMock := new(MockCache)

	txns := []models.Transaction{
		{ID: 1, UserID: 1, Amount: 100, TransactionDate: reportDate.Add(1 * time.Minute)},
		{ID: 2, UserID: 1, Amount: -40.5, TransactionDate: reportDate.Add(23*time.Hour + 59*time.Minute)},
	}
	store.On("FindTransactionsByUserAndDate", mock.Anything, uint(1), reportDate).Return(txns, nil)

	s := NewService(store, cacheMock, testLogger())
	rep, err := s.GetUserDailyReport(context.Background(), 1, reportDate)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), rep.UserID)
	assert.Equal(t, "2024-01-01", rep.Date)
	assert.InDelta(t, 59.5, rep.TotalAmount, 1e-9)
	assert.Len(t, rep.Transactions, 2)
	// Per-user reports bypass the cache entirely.
	cacheMock.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ListTransactionsByDate(t *testing.T) {
	t.Run("miss loads from store and caches records", func(t *testing.T) {
		store := new(MockStore)
		cacheMock := new(MockCache)

		txns := []models.Transaction{
			{ID: 5, UserID: 2, Amount: 12.5, TransactionDate: reportDate},
		}
		cacheMock.On("Get", mock.Anything, cache.DailyTransactionsKey(reportDate), mock.Anything).
			Return(false, nil)
		store.On("FindTransactionsByDate", mock.Anything, reportDate).Return(txns, nil)
		cacheMock.On("SetWithTTL", mock.Anything, cache.DailyTransactionsKey(reportDate),
			mock.MatchedBy(func(records []TransactionRecord) bool {
				return len(records) == 1 && records[0].ID == 5 && records[0].Amount == 12.5
			}), TransactionsCacheTTL).Return(nil)

		s := NewService(store, cacheMock, testLogger())
		records, err := s.ListTransactionsByDate(context.Background(), reportDate)

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, uint(2), records[0].UserID)
		cacheMock.AssertExpectations(t)
	})

	t.Run("hit skips the store", func(t *testing.T) {
		store := new(MockStore)
		cacheMock := new(MockCache)

		cacheMock.On("Get", mock.Anything, cache.DailyTransactionsKey(reportDate), mock.Anything).
			Run(func(args mock.Arguments) {
				*(args.Get(2).(*[]TransactionRecord)) = []TransactionRecord{{ID: 9, UserID: 3, Amount: 1}}
			}).
			Return(true, nil)

		s := NewService(store, cacheMock, testLogger())
		records, err := s.ListTransactionsByDate(context.Background(), reportDate)

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		store.AssertNotCalled(t, "FindTransactionsByDate", mock.Anything, mock.Anything)
	})
}

func TestService_GetUserDailyReport_StoreFailure(t *testing.T) {
	store := new(MockStore)
	cacheMock := new(MockCache)

	store.On("FindTransactionsByUserAndDate", mock.Anything, uint(1), reportDate).
		Return(nil, errors.New("connection refused"))

	s := NewService(store, cacheMock, testLogger())
	rep, err := s.GetUserDailyReport(context.Background(), 1, reportDate)

	assert.Error(t, err)
	assert.Nil(t, rep)
}

// Mock implementations

func (m *MockStore) FindTransactionsByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]models.Transaction, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockStore) FindTransactionsByDate(ctx context.Context, date time.Time) ([]models.Transaction, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockStore) SumAmountByDate(ctx context.Context, date time.Time) (float64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStore) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
