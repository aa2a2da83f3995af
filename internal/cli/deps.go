package cli

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/opsdeck/internal/clock"
	"github.com/mrz1836/opsdeck/internal/config"
	"github.com/mrz1836/opsdeck/internal/domain"
	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/store"
	"github.com/mrz1836/opsdeck/internal/tui"
	"github.com/mrz1836/opsdeck/internal/viewstate"
)

// deps bundles the wired dependencies a command needs: configuration, the
// task store, and the durable view-state stores. Close releases the store
// and the view-state backend.
type deps struct {
	cfg      *config.Config
	store    *store.SQLiteStore
	kv       viewstate.KV
	collapse *viewstate.CollapseStore
	prefs    *viewstate.PrefsStore
	out      tui.Output
	clk      clock.Clock
}

// openDeps loads configuration and opens the task store and the configured
// view-state backend for the command.
func openDeps(cmd *cobra.Command, flags *GlobalFlags) (*deps, error) {
	ctx := cmd.Context()
	logger := GetLogger()

	cfg, err := config.Load(logger.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, errors.Wrap(errors.ErrStoreUnavailable, err.Error())
	}

	clk := clock.RealClock{}
	taskStore, err := store.NewSQLiteStore(dbPath, clk)
	if err != nil {
		return nil, errors.Wrap(errors.ErrStoreUnavailable, err.Error())
	}

	kv, err := openViewStateKV(ctx, cfg)
	if err != nil {
		// View state must never block the console; fall back to a
		// process-local store and warn.
		logger.Warn().Err(err).Msg("view state backend unavailable, state will not persist")
		kv = viewstate.NewMemoryKV()
	}

	collapse := viewstate.NewCollapseStore(kv, logger)
	if err := collapse.Load(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to load collapse state")
	}

	return &deps{
		cfg:      cfg,
		store:    taskStore,
		kv:       kv,
		collapse: collapse,
		prefs:    viewstate.NewPrefsStore(kv, logger),
		out:      tui.NewOutput(cmd.OutOrStdout(), flags.Output),
		clk:      clk,
	}, nil
}

// openViewStateKV builds the key/value backend named by the configuration.
func openViewStateKV(ctx context.Context, cfg *config.Config) (viewstate.KV, error) {
	switch cfg.ViewState.Backend {
	case config.ViewStateBackendRedis:
		kv, err := viewstate.NewRedisKV(ctx, cfg.ViewState.RedisURL)
		if err != nil {
			return nil, errors.Wrap(errors.ErrViewStateUnavailable, err.Error())
		}
		return kv, nil
	default:
		path, err := cfg.ViewStatePath()
		if err != nil {
			return nil, err
		}
		kv, err := viewstate.NewFileKV(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrViewStateUnavailable, err.Error())
		}
		return kv, nil
	}
}

// Close releases the task store and the view-state backend.
func (d *deps) Close() {
	if d.store != nil {
		_ = d.store.Close()
	}
	if closer, ok := d.kv.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

// loadBoardData fetches tasks and users concurrently.
func (d *deps) loadBoardData(ctx context.Context, q store.Query) ([]*domain.Task, []*domain.User, error) {
	var (
		tasks []*domain.Task
		users []*domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = d.store.List(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = d.store.ListUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return tasks, users, nil
}

// resolveTask finds a task by reference: a UUID, a numeric display ID, or a
// display ID with a leading # (e.g. "#7").
func (d *deps) resolveTask(ctx context.Context, ref string) (*domain.Task, error) {
	if ref == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue, "task reference")
	}

	numeric := strings.TrimPrefix(ref, "#")
	if displayID, err := strconv.Atoi(numeric); err == nil {
		tasks, err := d.store.List(ctx, store.Query{})
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			if t.DisplayID == displayID {
				return t, nil
			}
		}
		return nil, errors.Wrapf(errors.ErrTaskNotFound, "task #%d", displayID)
	}

	return d.store.Get(ctx, ref)
}

// resolveTasks resolves a list of references, preserving order.
func (d *deps) resolveTasks(ctx context.Context, refs []string) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(refs))
	for _, ref := range refs {
		t, err := d.resolveTask(ctx, ref)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
