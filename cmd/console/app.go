package main

import (
	"time"

	"creditledger/internal/repositories"
	"creditledger/internal/repositories/cache"
	"creditledger/internal/services/report"
	"creditledger/internal/services/transaction"
	"creditledger/internal/services/user"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// app is the composition root. It owns the store and cache connections
// and hands them to the services by reference; nothing here is a
// package-level singleton.
type app struct {
	db       *gorm.DB
	cacheSvc *cache.CacheService

	transactions transaction.Service
	reports      report.Service
	users        user.Service

	log *logrus.Logger
}

func newApp(log *logrus.Logger) (*app, error) {
	db, err := repositories.Connect(repositories.LoadDBConfig())
	if err != nil {
		return nil, err
	}

	client := cache.NewRedisClient(cache.LoadRedisConfig())
	cacheSvc := cache.NewCacheService(client, 24*time.Hour)

	repo := repositories.NewLedgerRepository(db, log)

	return &app{
		db:           db,
		cacheSvc:     cacheSvc,
		transactions: transaction.NewService(repo, cacheSvc, transaction.LoadConfig(), log),
		reports:      report.NewService(repo, cacheSvc, log),
		users:        user.NewService(repo, log),
		log:          log,
	}, nil
}

func (a *app) Close() {
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.WithError(err).Warn("failed to close database connection")
		}
	}
	if err := a.cacheSvc.Close(); err != nil {
		a.log.WithError(err).Warn("failed to close redis connection")
	}
}
