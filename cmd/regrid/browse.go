package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/domonda/go-regrid/internal/log"
	"github.com/domonda/go-regrid/internal/watcher"
	"github.com/domonda/go-regrid/teagrid"
)

func (a *app) newBrowseCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse the table in the terminal",
		Long: `Browse the table in the terminal.

Arrow keys or hjkl move the selected cell, R and C select
the row or column of the cell. s sorts by the selected column,
S adds it as additional sort key. Press ? for all key bindings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBrowse(cmd, args[0], watch)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the file when it changes")
	return cmd
}

func (a *app) runBrowse(cmd *cobra.Command, path string, watch bool) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	table, err := a.openTable(ctx, path)
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		teagrid.New(table),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if watch {
		w, err := watcher.New(watcher.Config{Path: path, DebounceDur: a.cfg.WatchDebounce})
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()
		onChange, err := w.Start()
		if err != nil {
			return err
		}
		go a.reloadOnChange(ctx, p, path, onChange)
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	if m, ok := final.(teagrid.Model); ok && m.Err() != nil {
		log.Warn(log.CatUI, "Exited with error", "error", m.Err())
	}
	return nil
}

// reloadOnChange sends the reloaded data of path to p
// for every signal of onChange until ctx is done.
func (a *app) reloadOnChange(ctx context.Context, p *tea.Program, path string, onChange <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-onChange:
			view, err := loadView(ctx, a.cfg, a.source, path)
			if err != nil {
				log.ErrorErr(log.CatData, "Reloading file failed", err, "path", path)
				continue
			}
			log.Info(log.CatData, "Reloaded file", "path", path, "rows", view.NumRows())
			p.Send(teagrid.DataMsg{View: view})
		}
	}
}
