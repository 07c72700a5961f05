package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nwpolishing/backend/handlers"
	"github.com/nwpolishing/backend/internal/config"
	contenthandler "github.com/nwpolishing/backend/internal/content/handler"
	contentrepo "github.com/nwpolishing/backend/internal/content/repository"
	contentservice "github.com/nwpolishing/backend/internal/content/service"
	"github.com/nwpolishing/backend/internal/database"
	"github.com/nwpolishing/backend/internal/media"
	"github.com/nwpolishing/backend/internal/notify"
	"github.com/nwpolishing/backend/internal/oidc"
	"github.com/nwpolishing/backend/internal/operators"
	"github.com/nwpolishing/backend/internal/quotes"
	quotehandler "github.com/nwpolishing/backend/internal/quotes/handler"
	quoterepo "github.com/nwpolishing/backend/internal/quotes/repository"
	quoteservice "github.com/nwpolishing/backend/internal/quotes/service"
	"github.com/nwpolishing/backend/internal/sessions"
	"github.com/nwpolishing/backend/internal/settings"
	"github.com/nwpolishing/backend/internal/tokens"
	"github.com/nwpolishing/backend/pkg/logger"
	"github.com/nwpolishing/backend/pkg/metrics"
	"github.com/nwpolishing/backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v smtp=%v minio=%v",
		cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.SMTP.Host != "", cfg.MinIO.Endpoint != "")

	r := gin.New()

	// Lightweight CORS middleware: the public site is served from a different
	// origin than this API.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early: the rate limiter, session store and token
	// blacklist all prefer it when available.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			sessions.SetBlacklistClient(redisClient)
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Rate limiter for the public quote submission route only; read endpoints
	// stay unthrottled.
	var quoteLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			quoteLimiter = middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			quoteLimiter = middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races. Without
	// Mongo the service falls back to memory repositories, which is only
	// useful for local development.
	ctx := context.Background()
	var client *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			client = nil
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
		}
	}

	// repositories: Mongo when connected, memory fallback otherwise
	var (
		quoteRepo    quoteservice.Repository
		contentRepo  contentservice.Repository
		settingsRepo settings.Repository
		operatorRepo operators.Repository
	)
	if client != nil {
		db := client.Database(cfg.MongoDB.Database)
		quoteRepo = quoterepo.NewMongoRepo(db.Collection("quoteRequests"))
		contentRepo = contentrepo.NewMongoRepo(db)
		settingsRepo = settings.NewMongoRepository(db.Collection("siteSettings"))
		operatorRepo = operators.NewMongoRepository(db.Collection("operators"))
	} else {
		logger.Warnf("running with in-memory repositories; all data is lost on restart")
		quoteRepo = quoterepo.NewMemoryRepo()
		contentRepo = contentrepo.NewMemoryRepo()
		settingsRepo = settings.NewMemoryRepository()
		operatorRepo = operators.NewMemoryRepository()
	}

	// sessions: prefer Redis, fall back to Mongo
	var sessionsSvc *sessions.Service
	switch {
	case redisClient != nil:
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("using Redis for session storage")
	case client != nil:
		col := client.Database(cfg.MongoDB.Database).Collection("sessions")
		sessionsSvc = sessions.NewService(sessions.NewMongoRepository(col))
	default:
		logger.Fatalf("no session store available: configure Redis or MongoDB")
	}

	settingsSvc := settings.NewService(settingsRepo)
	operatorsSvc := operators.NewService(operatorRepo)

	// media resolver: presigned MinIO URLs when configured
	var resolver media.Resolver
	if cfg.MinIO.Endpoint != "" {
		mr, err := media.NewMinIOResolver(&cfg.MinIO)
		if err != nil {
			logger.Warnf("failed to initialize MinIO resolver: %v", err)
		} else {
			resolver = mr
		}
	}

	// quote intake publishes creation events to the notification dispatcher
	events := make(chan quotes.CreatedEvent, 64)
	quotesSvc := quoteservice.New(quoteRepo, quotes.NewChannelPublisher(events))

	var mailer notify.Mailer
	if cfg.SMTP.Host != "" {
		m, err := notify.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			logger.Warnf("failed to initialize SMTP mailer: %v", err)
		} else {
			mailer = m
		}
	}
	dispatchCtx, stopDispatch := context.WithCancel(ctx)
	defer stopDispatch()
	dispatchDone := make(chan struct{})
	if mailer != nil {
		d := notify.NewDispatcher(events, settingsSvc, mailer, cfg.Site.AdminBaseURL, cfg.SMTP.SendTimeout)
		go func() {
			defer close(dispatchDone)
			d.Run(dispatchCtx)
		}()
	} else {
		logger.Warnf("SMTP not configured; quote notifications disabled")
		go func() {
			defer close(dispatchDone)
			for {
				select {
				case <-events:
					metrics.NotificationsSkipped.Inc()
				case <-dispatchCtx.Done():
					return
				}
			}
		}()
	}

	// operator token verifier: external OIDC issuer when configured, local
	// HS256 otherwise
	var verifier middleware.Verifier
	if cfg.OIDC.Issuer != "" && cfg.OIDC.ClientID != "" {
		ver, err := oidc.NewVerifier(ctx, cfg.OIDC.Issuer, cfg.OIDC.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier, falling back to local tokens: %v", err)
			verifier = tokens.NewLocalVerifier(cfg.JWT.Secret)
		} else {
			verifier = ver
		}
	} else {
		verifier = tokens.NewLocalVerifier(cfg.JWT.Secret)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["storage"] = client != nil
		if client == nil {
			ready = false
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		} else {
			deps["redis"] = true
		}
		deps["mailer"] = mailer != nil || cfg.SMTP.Host == ""

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// public routes
	contentSvc := contentservice.New(contentRepo, resolver)
	contenthandler.Register(r, contentSvc, settingsSvc)
	if quoteLimiter != nil {
		quotehandler.RegisterPublic(r, quotesSvc, quoteLimiter)
	} else {
		quotehandler.RegisterPublic(r, quotesSvc)
	}

	// operator routes
	authHandler := handlers.NewAuthHandler(cfg, operatorsSvc, sessionsSvc)
	authHandler.Register(r.Group("/"))
	admin := r.Group("/api/admin", middleware.OperatorAuth(verifier))
	quotehandler.RegisterOperator(admin, quotesSvc)

	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting nwpolishing backend on %s", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	// graceful shutdown: stop accepting requests, then let the dispatcher
	// drain queued notifications
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	stopDispatch()
	select {
	case <-dispatchDone:
	case <-time.After(10 * time.Second):
		logger.Warnf("dispatcher did not finish draining before exit")
	}
}
