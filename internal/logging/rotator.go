package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// RotateConfig bounds the size of a log file and its backups.
type RotateConfig struct {
	MaxSizeBytes int64
	MaxBackups   int
	Compress     bool
}

// DefaultRotateConfig keeps the playground log under a megabyte with
// three compressed backups.
func DefaultRotateConfig() RotateConfig {
	return RotateConfig{
		MaxSizeBytes: 1 << 20,
		MaxBackups:   3,
		Compress:     true,
	}
}

// Rotator is an io.WriteCloser that moves the file aside once it would
// grow past MaxSizeBytes. Backups are named <file>.<timestamp>[.gz].
type Rotator struct {
	mu   sync.Mutex
	path string
	cfg  RotateConfig

	file *os.File
	size int64
	now  func() time.Time
}

// NewRotator opens (or creates) path for appending.
func NewRotator(path string, cfg RotateConfig) (*Rotator, error) {
	r := &Rotator{path: path, cfg: cfg, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rotator) open() error {
	if info, err := os.Stat(r.path); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = f
	return nil
}

// Write implements io.Writer.
func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.cfg.MaxSizeBytes > 0 && r.size > 0 && r.size+int64(len(p)) > r.cfg.MaxSizeBytes {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Close implements io.Closer.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *Rotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	backup := fmt.Sprintf("%s.%s", r.path, r.now().Format("20060102-150405.000"))
	if err := os.Rename(r.path, backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.cfg.Compress {
		if err := gzipFile(backup); err == nil {
			_ = os.Remove(backup)
		}
	}
	r.prune()
	return r.open()
}

// prune removes the oldest backups beyond MaxBackups.
func (r *Rotator) prune() {
	if r.cfg.MaxBackups <= 0 {
		return
	}
	dir, base := filepath.Split(r.path)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), base+".") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= r.cfg.MaxBackups {
		return
	}
	// timestamps sort lexically
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.cfg.MaxBackups] {
		_ = os.Remove(filepath.Join(dir, name))
	}
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}
