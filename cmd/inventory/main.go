package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"GroceryStock/internal/api"
	"GroceryStock/internal/auth"
	"GroceryStock/internal/inventory"
	"GroceryStock/pkg/kit"
)

func main() {
	service := "inventory"

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	store := inventory.New(cfg.MaxItems)
	if cfg.SeedDemo {
		if err := inventory.Seed(store); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("seeded demo inventory", zap.Int("items", store.Len()))
	}

	operators := auth.NewOperatorStore()
	if cfg.OperatorHash != "" {
		err = operators.AddHash(cfg.OperatorUser, []byte(cfg.OperatorHash), auth.RoleOperator)
	} else {
		err = operators.Add(cfg.OperatorUser, cfg.OperatorPass, auth.RoleOperator)
	}
	if err != nil {
		log.Fatal("operator setup failed", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	inventory.RegisterMetrics(reg, store)

	jwt := auth.NewTokenMaker(cfg.JWTSecret)
	s := &api.Server{
		Store: store,
		Auth:  &auth.Server{Log: log, Operators: operators, JWT: jwt},
		JWT:   jwt,
		Log:   log,
	}

	h := api.NewHandler(s, api.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsToken != "",
		MetricsToken:   cfg.MetricsToken,
	})

	log.Info("inventory ready",
		zap.Int("capacity", store.Cap()),
		zap.String("operator", cfg.OperatorUser),
	)
	if err := kit.RunHTTPServer(context.Background(), ":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
