package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"shipment-route-service/internal/adapters/amap"
	"shipment-route-service/internal/adapters/cache"
	"shipment-route-service/internal/adapters/optimizer"
	"shipment-route-service/internal/api"
	"shipment-route-service/internal/config"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/db"
	"shipment-route-service/internal/platform/obs"
	"shipment-route-service/internal/ports"
	"shipment-route-service/internal/services"
	"time"

	"github.com/sirupsen/logrus"
)

// stores are the optional persistent tiers behind the in-process memos.
// Nil fields mean memory only.
type stores struct {
	names     ports.Store[string]
	tours     ports.Store[domain.TourPlan]
	shipments ports.Store[domain.ShipmentRoute]
	close     func() error
}

// main is the application composition root.
// It wires concrete adapters (AMap, optimizer, cache stores) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	obs.Init(cfg.LogLevel, os.Stdout)
	log := obs.Base()

	if cfg.MaxPointsPerSegment > amap.MaxPointsPerRequest {
		log.WithField("max_points", cfg.MaxPointsPerSegment).
			WithField("provider_limit", amap.MaxPointsPerRequest).
			Warn("MAX_POINTS_PER_SEGMENT exceeds the driving API limit; segments may be rejected")
	}

	amapClient, err := amap.NewClient(cfg.AmapKey, amap.WithBaseURL(cfg.AmapBaseURL), amap.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		log.Fatal(err)
	}

	optimizerClient, err := optimizer.NewClient(cfg.OptimizerURL, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal(err)
	}

	st, err := openStores(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer st.close()

	fetcher := services.NewRouteFetcher(amapClient)
	composer := services.NewRouteComposer(fetcher, cfg.MaxPointsPerSegment, cfg.SegmentParallelism)
	namer := services.NewPlaceNamer(amapClient, cache.NewMemo("place_names", st.names))

	router := api.NewRouter(api.Services{
		Composer:  composer,
		Planner:   services.NewTourPlanner(optimizerClient, namer, composer, cache.NewMemo("tours", st.tours)),
		Shipments: services.NewShipmentRouter(fetcher, cache.NewMemo("shipments", st.shipments)),
		Search:    services.NewPlaceSearch(amapClient),
		Namer:     namer,
	})

	// Timeouts are tuned for cold-cache tours (one provider call per segment).
	log.WithField("addr", ":"+cfg.Port).WithField("cache_backend", cfg.CacheBackend).Info("server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.CacheBackend {
	case config.BackendPostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return stores{}, fmt.Errorf("open stores: %w", err)
		}
		if err := db.InitSchema(conn, db.Postgres); err != nil {
			conn.Close()
			return stores{}, fmt.Errorf("open stores: %w", err)
		}
		return stores{
			names:     cache.NewSQLNameStore(conn),
			tours:     cache.NewSQLRouteStore[domain.TourPlan](conn, cache.KindTour),
			shipments: cache.NewSQLRouteStore[domain.ShipmentRoute](conn, cache.KindShipment),
			close:     conn.Close,
		}, nil

	case config.BackendSqlite:
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return stores{}, fmt.Errorf("open stores: %w", err)
		}
		if err := db.InitSchema(conn, db.SQLite); err != nil {
			conn.Close()
			return stores{}, fmt.Errorf("open stores: %w", err)
		}
		return stores{
			names:     cache.NewSqliteNameStore(conn),
			tours:     cache.NewSqliteRouteStore[domain.TourPlan](conn, cache.KindTour),
			shipments: cache.NewSqliteRouteStore[domain.ShipmentRoute](conn, cache.KindShipment),
			close:     conn.Close,
		}, nil

	case config.BackendRedis:
		client, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return stores{}, fmt.Errorf("open stores: %w", err)
		}
		return stores{
			names:     cache.NewRedisStore[string](client, "place_name"),
			tours:     cache.NewRedisStore[domain.TourPlan](client, "tour"),
			shipments: cache.NewRedisStore[domain.ShipmentRoute](client, "shipment"),
			close:     client.Close,
		}, nil

	default:
		return stores{close: func() error { return nil }}, nil
	}
}
