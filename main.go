package main

import (
	"log"
	"net/http"
	"os"

	"github.com/crumbandco/bakeshop/app/catalog"
	"github.com/crumbandco/bakeshop/app/cmd"
	"github.com/crumbandco/bakeshop/app/configs"
	"github.com/crumbandco/bakeshop/app/routes"
	"github.com/crumbandco/bakeshop/app/services"
	"github.com/crumbandco/bakeshop/app/storage"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/crumbandco/bakeshop/app/utils/calc"
	"github.com/crumbandco/bakeshop/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	env := configs.LoadENV
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	logger, err := newLogger(env.AppEnv)
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	var kv storage.KeyValue = storage.NewMemoryStore()
	if env.DBHost != "" {
		db, err := configs.OpenConnection()
		if err != nil {
			sugar.Warnf("database unreachable, falling back to in-memory storage: %v", err)
		} else {
			kv = storage.NewGormStore(db)
			sugar.Info("durable storage connected")
		}
	} else {
		sugar.Warn("no database configured, wishlists will not survive a restart")
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		sugar.Warnf("session keys not configured, using ephemeral keys (run `bakeshop generate-keys` for stable ones): %v", err)
		keys = nil
	}
	var visitorStore *sessions.CookieVisitorStore
	if keys != nil {
		visitorStore = sessions.NewCookieVisitorStore(keys.AuthKey, keys.EncKey)
	} else {
		visitorStore = sessions.NewCookieVisitorStore(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))
	}

	if env.FreeDeliveryMin != 500 {
		calc.FreeDeliveryThreshold = decimal.NewFromInt(env.FreeDeliveryMin)
		sugar.Infof("free delivery threshold overridden to %d", env.FreeDeliveryMin)
	}

	registry := stores.NewRegistry(kv, sugar)
	gateway := services.NewSimulatedGateway(env.GatewayDelay, sugar)

	router := routes.NewRouter(routes.Deps{
		Registry:     registry,
		Catalog:      catalog.New(),
		AuthSvc:      services.NewAuthService(gateway, sugar),
		CheckoutSvc:  services.NewCheckoutService(gateway, validator.New(), sugar),
		CustomizeSvc: services.NewCustomizeService(sugar),
		VisitorStore: visitorStore,
		SessionKeys:  keys,
		Log:          sugar,
	})

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	sugar.Infof("server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		sugar.Errorf("server stopped: %v", err)
	}
}

func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
