package main

import (
	"context"
	"net/http"

	"github.com/homequest/backend/config"
	"github.com/homequest/backend/internal/domain"
	"github.com/homequest/backend/internal/domain/badge"
	"github.com/homequest/backend/internal/domain/coin"
	"github.com/homequest/backend/internal/repository"
	"github.com/homequest/backend/pkg/idutil"
	"github.com/homequest/backend/pkg/logger"
	"github.com/homequest/backend/pkg/router"
	"github.com/homequest/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	userRepo        repository.UserRepository
	daySummaryRepo  repository.DaySummaryRepository
	earnedBadgeRepo repository.EarnedBadgeRepository
	coinRepo        repository.CoinRepository

	badgeEngine *badge.Engine
	ledger      *coin.Ledger

	userDomain     domain.UserDomain
	badgeDomain    domain.BadgeDomain
	coinDomain     domain.CoinDomain
	progressDomain domain.ProgressDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	configs, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = configs
	s.ctx = xcontext.WithConfigs(s.ctx, *configs)
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.LevelFromString(s.configs.LogLevel))
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                      s.configs.Database.ConnectionString(),
		DefaultStringSize:        256,
		DisableDatetimePrecision: true,
		DontSupportRenameIndex:   true,
		DontSupportRenameColumn:  true,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.daySummaryRepo = repository.NewDaySummaryRepository()
	s.earnedBadgeRepo = repository.NewEarnedBadgeRepository()
	s.coinRepo = repository.NewCoinRepository()
}

func (s *srv) loadBadgeEngine() {
	catalog := badge.DefaultCatalog()
	if len(s.configs.Badge.Catalog) > 0 {
		var err error
		catalog, err = badge.NewCatalog(s.configs.Badge.Catalog)
		if err != nil {
			panic(err)
		}
	}

	s.badgeEngine = badge.NewEngine(catalog)
}

func (s *srv) loadLedger() {
	idGenerator, err := idutil.NewGenerator(s.configs.Coin.SnowflakeNode)
	if err != nil {
		panic(err)
	}

	s.ledger = coin.NewLedger(s.coinRepo, idGenerator)
}

func (s *srv) loadDomains() {
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.badgeDomain = domain.NewBadgeDomain(
		s.userRepo, s.daySummaryRepo, s.earnedBadgeRepo, s.badgeEngine)
	s.coinDomain = domain.NewCoinDomain(s.ledger)
	s.progressDomain = domain.NewProgressDomain(
		s.daySummaryRepo, s.ledger, s.badgeDomain)
}
