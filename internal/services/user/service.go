package user

import (
	"context"
	"math"
	"math/rand"

	"creditledger/internal/models"
	"creditledger/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Service exposes account-level operations: lookup, direct credit
// adjustment and bulk population of sample accounts.
type Service interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateUserCredit(ctx context.Context, userID uint, amount float64) (*models.User, error)
	GenerateRandomUsers(ctx context.Context, count int) ([]models.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]models.User, error)
}

type service struct {
	repo repositories.LedgerRepository
	log  logrus.FieldLogger
}

// NewService creates the user service.
func NewService(repo repositories.LedgerRepository, log logrus.FieldLogger) Service {
	if repo == nil {
		panic("repo is required")
	}
	if log == nil {
		panic("logger is required")
	}
	return &service{repo: repo, log: log}
}

func (s *service) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			s.log.WithField("userId", id).Warn("user not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUserCredit adjusts the balance directly, outside the ledger.
// It always rejects debits past zero; no transaction row is written.
func (s *service) UpdateUserCredit(ctx context.Context, userID uint, amount float64) (*models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if amount < 0 && math.Abs(amount) > user.Credit {
		return nil, ErrInsufficientCredit
	}

	user.UpdateCredit(amount)
	return s.repo.SaveUser(ctx, user)
}

// GenerateRandomUsers populates the store with count sample accounts
// carrying an initial credit between 1000 and 10000.
func (s *service) GenerateRandomUsers(ctx context.Context, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	for i := 0; i < count; i++ {
		u := &models.User{
			Name:   randomName(),
			Credit: math.Round((1000+rand.Float64()*9000)*100) / 100,
		}
		saved, err := s.repo.SaveUser(ctx, u)
		if err != nil {
			s.log.WithError(err).Error("error generating random users")
			return nil, err
		}
		users = append(users, *saved)
	}

	s.log.WithField("count", count).Info("generated random users")
	return users, nil
}

func (s *service) ListUsers(ctx context.Context, page, limit int) ([]models.User, error) {
	return s.repo.FindAllUsers(ctx, page, limit)
}
