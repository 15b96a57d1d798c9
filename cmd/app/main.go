package main

import (
	"fisher-blog-api/internal/app"
	"fisher-blog-api/pkg/config"
)

// @title           Fisher Blog API
// @version         1.0
// @description     Blogging platform backend for the fishing community

// @host      localhost:5000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.AccessTokenKey == "access-secret-change-in-production" || cfg.AccessTokenKey == "" {
		panic("ACCESS_TOKEN_KEY must be set in environment variables")
	}
	if cfg.RefreshTokenKey == "refresh-secret-change-in-production" || cfg.RefreshTokenKey == "" {
		panic("REFRESH_TOKEN_KEY must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
