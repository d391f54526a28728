package main

import (
	"net/http"

	"github.com/homequest/backend/internal/middleware"
	"github.com/homequest/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadBadgeEngine()
	s.loadLedger()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)

	// These following APIs need the user id header set by the session layer.
	userRouter := s.router.Branch("")
	userRouter.Before(middleware.RequestUser())
	{
		// User API
		router.POST(userRouter, "/linkSibling", s.userDomain.LinkSibling)

		// Progress API
		router.POST(userRouter, "/toggleTask", s.progressDomain.SetTaskCompletion)
		router.POST(userRouter, "/completeQuiz", s.progressDomain.CompleteQuiz)
		router.POST(userRouter, "/recordGame", s.progressDomain.RecordGame)

		// Coin API
		router.GET(userRouter, "/getBalance", s.coinDomain.GetBalance)
		router.GET(userRouter, "/getTransactions", s.coinDomain.GetTransactions)
		router.POST(userRouter, "/adjustCoins", s.coinDomain.AdjustCoins)
		router.POST(userRouter, "/exchangeReward", s.coinDomain.ExchangeReward)

		// Badge API
		router.POST(userRouter, "/refreshBadges", s.badgeDomain.RefreshBadges)
		router.GET(userRouter, "/getMyBadges", s.badgeDomain.GetMyBadges)
		router.GET(userRouter, "/getBadgeCatalog", s.badgeDomain.GetBadgeCatalog)
	}

	// Public API.
	router.POST(s.router, "/createUser", s.userDomain.CreateUser)
}
