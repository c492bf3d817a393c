package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"trialscout/internal/config"
	"trialscout/internal/events"
	"trialscout/internal/httpapi"
	"trialscout/internal/registry"
	"trialscout/internal/store"

	_ "modernc.org/sqlite"
)

func main() {
	dataDir := os.Getenv("TRIALSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One process per data dir; two would fight over the cache DB.
	lock := flock.New(filepath.Join(dataDir, "trialscout.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another trialscout instance is already using %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config invalid (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	client := registry.New(registry.Config{
		BaseURL:   cfg.Registry.BaseURL,
		Timeout:   time.Duration(cfg.Registry.TimeoutSeconds) * time.Second,
		ReqPerSec: cfg.Registry.ReqPerSec,
		Burst:     cfg.Registry.Burst,
	})

	var searcher registry.Searcher = client
	if cfg.Cache.Enabled {
		dbPath := filepath.Join(dataDir, "trialscout.db")
		db, err := store.Open(dbPath)
		if err != nil {
			log.Fatalf("cache db open failed (%s): %v", dbPath, err)
		}
		defer db.Close()

		cache := &store.ResponseCache{DB: db, TTL: time.Duration(cfg.Cache.TTLMinutes) * time.Minute}
		if n, err := cache.Purge(context.Background()); err == nil && n > 0 {
			log.Printf("level=info msg=\"cache purged\" dropped=%d", n)
		}
		searcher = &registry.CachedClient{Inner: client, Cache: cache}
	}

	hub := events.NewHub()

	mux := httpapi.NewMux(httpapi.Deps{
		Registry:    searcher,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	port := cfg.App.Port
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("bad PORT %q: %v", v, err)
		}
		port = p
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("level=info msg=\"listening\" addr=http://%s data_dir=%s cache=%t", addr, dataDir, cfg.Cache.Enabled)

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog, httpapi.Cors),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
