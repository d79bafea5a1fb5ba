// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

// dailyFile is an io.WriteCloser that appends to <dir>/<prefix>.YYYY-MM-DD
// and switches to a new file when the UTC date changes.
type dailyFile struct {
	dir    string
	prefix string
	now    func() time.Time

	mu   sync.Mutex
	day  string
	file *os.File
}

func newDailyFile(dir, prefix string) (*dailyFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return &dailyFile{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
	}, nil
}

// Write implements io.Writer.
func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.rotate(); err != nil {
		return 0, err
	}
	return d.file.Write(p)
}

// Close implements io.Closer.
func (d *dailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	d.day = ""
	return err
}

// rotate opens the file for the current day. Callers hold d.mu.
func (d *dailyFile) rotate() error {
	day := d.now().UTC().Format(dayLayout)
	if d.file != nil && day == d.day {
		return nil
	}

	path := filepath.Join(d.dir, d.prefix+"."+day)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	if d.file != nil {
		_ = d.file.Close()
	}
	d.file = f
	d.day = day
	return nil
}
