package main

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/wishwall/backend/internal/middleware"
	"github.com/wishwall/backend/pkg/router"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := httpSrv.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.ResolveUserID())
	s.router.AfterResponse(middleware.HandleSaveSession())
	s.router.AfterResponse(middleware.Logger())

	// Public API. The viewer identity is optional here.
	{
		router.POST(s.router, "/register", s.authDomain.Register)
		router.POST(s.router, "/login", s.authDomain.Login)

		router.GET(s.router, "/getFeed", s.wishDomain.GetFeed)
		router.GET(s.router, "/getUserWishes", s.wishDomain.GetUserWishes)
		router.GET(s.router, "/getUserStats", s.statisticDomain.GetUserStats)
		router.GET(s.router, "/getInteractions", s.interactionDomain.GetList)
	}

	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate())
	{
		router.GET(authRouter, "/getMe", s.authDomain.GetMe)
		router.POST(authRouter, "/logout", s.authDomain.Logout)

		router.GET(authRouter, "/getFollowGraph", s.followDomain.GetGraph)
		router.POST(authRouter, "/toggleFollow", s.followDomain.Toggle)

		router.POST(authRouter, "/createWish", s.wishDomain.Create)
		router.POST(authRouter, "/deleteWish", s.wishDomain.Delete)
		router.POST(authRouter, "/completeWish", s.wishDomain.MarkCompleted)

		router.POST(authRouter, "/toggleLike", s.interactionDomain.ToggleLike)
		router.POST(authRouter, "/addComment", s.interactionDomain.AddComment)
		router.POST(authRouter, "/recountLikes", s.interactionDomain.RecountLikes)
	}
}
