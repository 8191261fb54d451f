package main

import (
	"context"
	"os"

	"github.com/aws/aws-xray-sdk-go/xray"
	adaptermiddleware "github.com/jmjalil96/friendly-system-sub003/internal/adapters/http/middleware"
	adapterlogger "github.com/jmjalil96/friendly-system-sub003/internal/adapters/logger"
	"github.com/jmjalil96/friendly-system-sub003/internal/application"
	"github.com/jmjalil96/friendly-system-sub003/internal/infrastructure/config"
	"github.com/jmjalil96/friendly-system-sub003/internal/infrastructure/postgres"
	httpiface "github.com/jmjalil96/friendly-system-sub003/internal/interfaces/http"
)

func main() {
	logger := adapterlogger.New()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "configuration error", "error", err)
		os.Exit(1)
	}
	xray.Configure(xray.Config{LogLevel: "error"})

	db, err := postgres.Open(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		logger.Error(ctx, "failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sessionRepo := postgres.NewSessionRepository(db)
	userRepo := postgres.NewUserRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	insurerRepo := postgres.NewInsurerRepository(db)
	policyRepo := postgres.NewPolicyRepository(db)
	claimRepo := postgres.NewClaimRepository(db)

	authSvc := application.NewAuthService(sessionRepo, userRepo, cfg.Session.Expiry(), logger)
	clientSvc := application.NewClientService(clientRepo)
	insurerSvc := application.NewInsurerService(insurerRepo)
	policySvc := application.NewPolicyService(policyRepo)
	claimSvc := application.NewClaimService(claimRepo)
	userSvc := application.NewUserService(userRepo)

	cookie := httpiface.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure}
	handlers := httpiface.Handlers{
		Auth:     httpiface.NewAuthHandler(authSvc, cookie),
		Clients:  httpiface.NewClientsHandler(clientSvc),
		Insurers: httpiface.NewInsurersHandler(insurerSvc),
		Policies: httpiface.NewPoliciesHandler(policySvc),
		Claims:   httpiface.NewClaimsHandler(claimSvc),
		Users:    httpiface.NewUsersHandler(userSvc),
	}
	mw := httpiface.Middleware{
		Session:       adaptermiddleware.Session(authSvc, cfg.Session.CookieName),
		XRay:          adaptermiddleware.XRayMiddleware("claims-http"),
		RequestLogger: adaptermiddleware.RequestLogger(logger),
	}

	e := httpiface.NewRouter(handlers, mw, logger)
	logger.Info(ctx, "starting http server", "port", cfg.Port, "environment", cfg.Environment)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
