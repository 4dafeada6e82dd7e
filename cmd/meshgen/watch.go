// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/mesh/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// watch generates the shapes in the shape file each time it is
// written, until ctx is done. Errors in the file are printed and
// watching continues.
func watch(ctx context.Context, w io.Writer, path string, level *slog.Level) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	path = filepath.Clean(path)
	wt, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer wt.Close()
	// editors often replace the file, so watch its directory
	if err := wt.Add(filepath.Dir(path)); err != nil {
		return err
	}
	p := logx.NewPrinter(w)
	p.Println(p.Title("watching"), path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-wt.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Debug("meshgen watch", "event", ev)
			if err := generateFile(w, path, level); err != nil {
				p.Println(p.Error("meshgen:"), err)
			}
		case err, ok := <-wt.Errors:
			if !ok {
				return nil
			}
			slog.Error(err.Error())
		}
	}
}
