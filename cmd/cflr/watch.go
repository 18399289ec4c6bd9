// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/cflr/setting"
)

// watch solves once, then again after every write to the graph or grammar
// file, until ctx is done. Load errors and timeouts are logged and do not
// stop watching. A run starts only after the solver of the previous one has
// returned, so timed-out runs never pile up.
func (a *app) watch(ctx context.Context, f solveFlags, list []setting.Setting) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool)
	for _, p := range []string{f.graphPath, f.grammarPath} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		targets[abs] = true
		// Editors often replace files, so the directory is watched.
		if err = watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}

	rerun := func() {
		a.waitSolver()
		if err := a.solve(ctx, f, setting.Clone(list)); err != nil {
			a.log.Error("solve failed", "error", err)
		}
	}
	rerun()
	for {
		select {
		case <-ctx.Done():
			a.waitSolver()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				a.log.Info("input changed", "file", event.Name)
				rerun()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", "error", err)
		}
	}
}
