package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"realestate-lending/internal/adapter/events"
	httpadp "realestate-lending/internal/adapter/http"
	mw "realestate-lending/internal/adapter/middleware"
	"realestate-lending/internal/adapter/repository/mysql"
	"realestate-lending/internal/config"
	"realestate-lending/internal/domain/payment"
	"realestate-lending/internal/infrastructure/cache"
	"realestate-lending/internal/infrastructure/db"
	"realestate-lending/internal/infrastructure/signer"
	"realestate-lending/internal/logging"
	"realestate-lending/internal/usecase/repayment"
	"realestate-lending/internal/usecase/servicing"
	"realestate-lending/internal/usecase/signature"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	params, err := cfg.LendingParams()
	if err != nil {
		return err
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), db.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		return err
	}
	if cfg.AutoMigrate {
		if err := mysql.AutoMigrate(gdb); err != nil {
			return err
		}
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	issuer, err := signer.NewIssuer(cfg.SignerKey, cfg.ChainID)
	if err != nil {
		return err
	}
	if !issuer.Available() {
		log.Warn("SIGNER_PRIVATE_KEY not set; signature endpoints will answer 503")
	} else {
		log.Info("signer loaded", "address", issuer.Address().Hex(), "chain_id", cfg.ChainID)
	}

	var pub payment.Publisher = events.NoopPublisher{Log: log}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return err
		}
		defer kp.Close()
		pub = kp
	}

	// usecases
	servicingUC := servicing.NewUsecase(mysql.NewOffchainLedger(gdb), params)
	repaymentUC := repayment.NewUsecase(mysql.NewGormUoW(gdb), pub, params, repayment.WithLogger(log))
	signatureUC := signature.NewUsecase(issuer, cache.NewRedisNonces(rdb))

	h := httpadp.NewHandler(issuer)
	sh := httpadp.NewServicingHandler(servicingUC)
	rh := httpadp.NewRepaymentHandler(repaymentUC)
	sigh := httpadp.NewSignatureHandler(signatureUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				log.ErrorContext(c.Request().Context(), "request", append(attrs, "err", v.Error)...)
				return nil
			}
			log.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}), middleware.Recover())

	idem := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	// routes
	e.GET("/health", h.Health)

	e.GET("/lenders/:address/interest", sh.LenderInterest)
	e.GET("/borrowers/:address/eligibility", sh.Eligibility)
	e.GET("/loans/:loan_id/payment", sh.LoanPayment)
	e.GET("/protocol/metrics", sh.ProtocolMetrics)

	e.POST("/loans/:loan_id/payments", rh.RecordPayment, idem)

	sig := e.Group("/signatures", mw.OperatorAuth(cfg.OperatorJWTSecret), idem)
	sig.POST("/withdrawal", sigh.Withdrawal)
	sig.POST("/loan-approval", sigh.LoanApproval)
	sig.POST("/repayment", sigh.Repayment)

	if cfg.OperatorJWTSecret == "" {
		log.Warn("OPERATOR_JWT_SECRET not set; signature endpoints are unauthenticated")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
