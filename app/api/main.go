package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/ensrecords/app/api/docs"
	"github.com/x-xyz/ensrecords/base/ctx"
	"github.com/x-xyz/ensrecords/base/database/redisclient"
	"github.com/x-xyz/ensrecords/base/goroutine"
	"github.com/x-xyz/ensrecords/base/log"
	"github.com/x-xyz/ensrecords/base/metrics"
	bValidator "github.com/x-xyz/ensrecords/base/validator"
	"github.com/x-xyz/ensrecords/domain"
	"github.com/x-xyz/ensrecords/domain/keys"
	mmiddleware "github.com/x-xyz/ensrecords/middleware"
	"github.com/x-xyz/ensrecords/service/cache"
	"github.com/x-xyz/ensrecords/service/cache/provider"
	"github.com/x-xyz/ensrecords/service/cache/provider/compound"
	"github.com/x-xyz/ensrecords/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/ensrecords/service/cache/provider/redis"
	"github.com/x-xyz/ensrecords/service/chain"
	"github.com/x-xyz/ensrecords/service/ens"
	authMiddleware "github.com/x-xyz/ensrecords/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/ensrecords/stores/auth/usecase"
	ens_delivery "github.com/x-xyz/ensrecords/stores/ens/delivery/http"
)

const httpCachePfx = "httpCacheMiddleware"

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("cache.size", 64)
	viper.SetDefault("cache.ttl", time.Hour)
	viper.SetDefault("cache.resolveTtl", 30*time.Second)
	viper.SetDefault("http.cacheTtl", 12*time.Second)

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			ENS Records API
//	@version		1.0
//	@description	Read and write ENS text and address records, list recent registrations.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				operator token issued by app/signtoken, apply with bearer {token}
func main() {
	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())

	context := ctx.Background()

	customValidator, err := bValidator.NewCustomValidator(validator.New())
	if err != nil {
		context.WithField("err", err).Panic("bValidator.NewCustomValidator failed")
	}
	e.Validator = customValidator

	// init cache, redis is an optional shared layer behind the local one
	cacheSize := viper.GetInt("cache.size")
	var cacheProvider provider.Provider = primitive.NewPrimitive("ensrecords", cacheSize)
	if redisCacheURI := viper.GetString("redis_cache.uri"); redisCacheURI != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePwd := viper.GetString("redis_cache.password")
		redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
			PoolMultiplier: redisCachePoolMultiplier,
			Retry:          true,
		})
		defer redisCachePool.Close()
		cacheProvider = compound.NewCompound(
			cacheProvider,
			redisCache.NewRedis(redisCacheName, redisCachePool, metrics.New(redisCacheName)),
		)
	}

	// init chain clients
	networks := make(map[string]*domain.Network)
	if err := viper.UnmarshalKey("networks", &networks); err != nil {
		context.WithField("err", err).Panic("invalid networks config")
	}
	clientProvider, err := chain.NewProvider(&chain.ProviderCfg{
		Networks:            networks,
		PrivateKey:          viper.GetString("signer.privateKey"),
		ReceiptPollInterval: viper.GetDuration("receipt.pollInterval"),
		ReceiptMaxInterval:  viper.GetDuration("receipt.maxInterval"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewProvider failed")
	}

	ensService := ens.New(&ens.ServiceCfg{
		Provider: clientProvider,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.ttl"),
			Pfx:   keys.PfxPrimaryName,
			Cache: cacheProvider,
		}),
		ResolveCache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.resolveTtl"),
			Pfx:   keys.PfxResolve,
			Cache: cacheProvider,
		}),
		Metrics:       metrics.New("ens"),
		MaxConcurrent: viper.GetInt("ens.maxConcurrent"),
	})

	httpCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("http.cacheTtl"),
		Pfx:   httpCachePfx,
		Cache: cacheProvider,
	})

	jwtSecret := viper.GetString("auth.jwtSecret")
	if jwtSecret == "" {
		context.Warn("auth.jwtSecret is empty, record writes are refused")
	}
	authMw := authMiddleware.New(auth_usecase.New(jwtSecret))

	ens_delivery.New(e, ensService, clientProvider, authMw.Auth(), mmiddleware.CacheHttp(httpCache))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	serverDone := goroutine.RecoverableGo(context, func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case <-serverDone:
		log.Log().Info("server stopped")
	}
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
