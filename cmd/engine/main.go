package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"jobmatch-engine/internal/config"
	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/events"
	"jobmatch-engine/internal/facet"
	"jobmatch-engine/internal/history"
	"jobmatch-engine/internal/httpapi"
	"jobmatch-engine/internal/jobstore"
	"jobmatch-engine/internal/match"
	"jobmatch-engine/internal/secrets"
	"jobmatch-engine/internal/store"
)

func main() {
	dataDir := os.Getenv("JOBMATCH_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine instance per data dir; the history DB has one writer.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock data dir: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance already owns %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
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
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		log.Printf("level=warn msg=\"config\" warn=%q", w)
	}
	if !vr.OK() {
		log.Fatalf("config invalid: %v", vr.Errors)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "jobmatch.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()
	recorder := history.NewRecorder(db.Pool)
	defer recorder.Close()

	idx := match.Default()
	engine := facet.NewEngine(idx)
	engine.SalaryScale = cfg.Search.SalaryScale

	// Token is optional; the upstream may be open on localhost.
	token, err := secrets.GetUpstreamToken(secrets.UpstreamKeyringAccount(cfg))
	if err != nil {
		log.Printf("level=info msg=\"no upstream token\" err=%v", err)
	}

	client := jobstore.New(jobstore.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		PageSize:  cfg.Upstream.PageSize,
		ReqPerSec: cfg.Upstream.ReqPerSec,
		Burst:     cfg.Upstream.Burst,
		Token:     token,
	})

	var snapshotVal atomic.Value // stores []domain.Job
	snapshotVal.Store([]domain.Job(nil))

	var snapshotStatus atomic.Value
	snapshotStatus.Store(httpapi.SnapshotStatus{})

	refreshSnapshot := func(ctx context.Context) (int, error) {
		jobs, err := client.Snapshot(ctx)
		if err != nil {
			return 0, err
		}
		snapshotVal.Store(jobs)
		hub.Publish(events.SnapshotUpdated(len(jobs)))
		return len(jobs), nil
	}

	// Initial snapshot; an unreachable upstream must not kill startup.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if n, err := refreshSnapshot(ctx); err != nil {
			log.Printf("level=warn msg=\"initial snapshot failed\" err=%v", err)
		} else {
			log.Printf("level=info msg=\"snapshot loaded\" jobs=%d", n)
		}
		cancel()
	}

	startRefresher(&cfgVal, refreshSnapshot)

	deps := httpapi.Deps{
		DB:              db.Pool,
		Hub:             hub,
		Engine:          engine,
		Index:           idx,
		CfgVal:          &cfgVal,
		SnapshotVal:     &snapshotVal,
		SnapshotStatus:  &snapshotStatus,
		History:         recorder,
		UserCfgPath:     userCfgPath,
		LoadCfg:         loadCfg,
		RefreshSnapshot: refreshSnapshot,
	}

	handler := httpapi.Chain(
		httpapi.NewMux(deps),
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("level=info msg=\"engine listening\" addr=http://%s", addr)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}

// startRefresher re-pulls the snapshot on the configured interval.
func startRefresher(cfgVal *atomic.Value, refresh func(ctx context.Context) (int, error)) {
	go func() {
		for {
			cfg := cfgVal.Load().(config.Config)
			interval := time.Duration(cfg.Upstream.RefreshSeconds) * time.Second
			if interval <= 0 {
				interval = 5 * time.Minute
			}
			time.Sleep(interval)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			n, err := refresh(ctx)
			cancel()
			if err != nil {
				log.Printf("level=warn msg=\"snapshot refresh failed\" err=%v", err)
				continue
			}
			log.Printf("level=info msg=\"snapshot refreshed\" jobs=%d", n)
		}
	}()
}
