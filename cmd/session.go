package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/yamiarchive/yami/internal/catalog"
	"github.com/yamiarchive/yami/internal/config"
	"github.com/yamiarchive/yami/internal/kv"
	"github.com/yamiarchive/yami/internal/logger"
	"github.com/yamiarchive/yami/internal/persist"
	"github.com/yamiarchive/yami/internal/state"
)

// session bundles what every command needs: config, catalog, and the user
// state store opened on durable storage.
type session struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	kv      kv.Store
	store   *state.Store
	log     *slog.Logger

	durable     bool
	closeLogger func() error
}

func openSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	closeLogger, err := logger.Setup(logger.Config{
		Dir:   cfg.LogDir(),
		Debug: flagDebug || cfg.Log.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "[warn] logging disabled: %v\n", err)
	}
	log := logger.L().With("run_id", uuid.New().String())

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		if closeLogger != nil {
			closeLogger()
		}
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	s := &session{cfg: cfg, catalog: cat, log: log, closeLogger: closeLogger, durable: true}

	store, err := kv.Open(cfg.Storage.Backend, cfg.StoragePath())
	if err != nil {
		// Bookmarks and votes still work for this run; they just won't survive it.
		log.Error("storage.open_failed", "backend", cfg.Storage.Backend, "path", cfg.StoragePath(), "err", err)
		fmt.Fprintf(os.Stderr, "[warn] storage unavailable, changes will not be saved: %v\n", err)
		store = kv.NewMemory()
		s.durable = false
	}
	s.kv = store
	s.store = state.New(persist.New(store, log))

	log.Debug("session.opened",
		"backend", cfg.Storage.Backend,
		"path", cfg.StoragePath(),
		"articles", cat.Len(),
	)
	return s, nil
}

// categories is the category bar for this session: the fixed bar for the
// embedded catalog, or the primary categories of a user-supplied one.
func (s *session) categories() []string {
	if s.cfg.Catalog != "" {
		return catalog.PrimaryCategories(s.catalog.Articles())
	}
	return catalog.Categories()
}

func (s *session) Close() {
	if err := s.kv.Close(); err != nil {
		s.log.Warn("storage.close_failed", "err", err)
	}
	if s.closeLogger != nil {
		s.closeLogger()
	}
}
