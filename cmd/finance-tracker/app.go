package main

import (
	"github.com/example/finance-tracker/internal/config"
	"github.com/example/finance-tracker/internal/ledger"
	"github.com/example/finance-tracker/internal/logger"
	"github.com/example/finance-tracker/internal/storage"
	"github.com/example/finance-tracker/internal/viewer"
	"github.com/example/finance-tracker/pkg/transaction"
	"github.com/spf13/afero"
)

type app struct {
	cfg   *config.Config
	log   *logger.Logger
	fs    afero.Fs
	repo  *storage.FileRepository
	store *ledger.Store
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	if ledgerFile != "" {
		cfg.LedgerFile = ledgerFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	repo := storage.NewFileRepository(fs, cfg.LedgerFile, log)

	return &app{
		cfg:   cfg,
		log:   log,
		fs:    fs,
		repo:  repo,
		store: ledger.Open(repo, log),
	}, nil
}

// runViewer shows the in-memory store; reset inside the viewer rereads the file
func (a *app) runViewer() error {
	reload := func() []transaction.Group {
		return a.repo.Load().Groups()
	}
	return viewer.Run(a.store.List(), reload, a.cfg.Viewer.Height)
}

func (a *app) close() {
	_ = a.log.Close()
}
