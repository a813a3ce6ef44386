package activation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSink appends generation events to a JSONL file, one object per line.
// With MaxBytes set, a file that would grow past the limit is moved to
// "<path>.1" (replacing any previous one) and a fresh file is started.
type FileSink struct {
	path     string
	maxBytes int64

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewFileSink opens path for appending without rotation.
func NewFileSink(path string) (*FileSink, error) {
	return NewRotatingFileSink(path, 0)
}

// NewRotatingFileSink opens path for appending, creating parent
// directories. maxBytes <= 0 disables rotation.
func NewRotatingFileSink(path string, maxBytes int64) (*FileSink, error) {
	if path == "" {
		return nil, errors.New("activation: file sink path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	s := &FileSink{path: path, maxBytes: maxBytes}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileSink) open() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat file: %w", err)
	}
	s.file, s.size = f, st.Size()
	return nil
}

func (s *FileSink) rotate() error {
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close for rotation: %w", err)
	}
	s.file = nil
	if err := os.Rename(s.path, s.path+".1"); err != nil {
		return fmt.Errorf("rotate: %w", err)
	}
	return s.open()
}

func (s *FileSink) Name() string { return "jsonl:" + s.path }

// Deliver writes ev as one line. Each line is written with a single write
// call so concurrent readers never see a partial event.
func (s *FileSink) Deliver(_ context.Context, ev *Event) error {
	if ev == nil {
		return nil
	}
	line, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return errors.New("activation: file sink closed")
	}
	if s.maxBytes > 0 && s.size > 0 && s.size+int64(len(line)) > s.maxBytes {
		if err := s.rotate(); err != nil {
			return err
		}
	}
	n, err := s.file.Write(line)
	s.size += int64(n)
	if err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

func (s *FileSink) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
