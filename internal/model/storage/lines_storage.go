package storage

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/entity/price"
)

// LinesStorage is an append-only log holding one JSON record per line.
type LinesStorage struct {
	path   string
	logger *zap.Logger
}

func NewLinesStorage(path string, logger *zap.Logger) *LinesStorage {
	return &LinesStorage{path: path, logger: logger}
}

func (s *LinesStorage) Path() string {
	return s.path
}

// Load reads every record. A torn last line, left by a crash mid-write, is
// skipped; a corrupt line anywhere else is an error.
func (s *LinesStorage) Load() ([]price.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []price.Record{}, nil
	}
	if err != nil {
		s.logger.Error("error reading price log", zap.String("path", s.path), zap.Error(err))
		return nil, errors.Wrap(err, "reading price log")
	}

	records := make([]price.Record, 0)
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var rec price.Record
		if err = json.Unmarshal(line, &rec); err != nil {
			if i == len(lines)-1 {
				s.logger.Warn("skipping torn last line of price log", zap.String("path", s.path))
				break
			}
			s.logger.Error("error parsing price log", zap.String("path", s.path), zap.Int("line", i+1), zap.Error(err))
			return nil, errors.Wrapf(err, "parsing price log line %d", i+1)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append writes rec as a new line and syncs the file.
func (s *LinesStorage) Append(rec price.Record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshalling record")
	}
	line = append(line, '\n')

	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "creating log dir")
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, filePerm)
	if err != nil {
		s.logger.Error("error opening price log", zap.String("path", s.path), zap.Error(err))
		return errors.Wrap(err, "opening price log")
	}
	defer f.Close()

	if err = s.dropTornTail(f); err != nil {
		return errors.Wrap(err, "repairing price log")
	}

	if _, err = f.Write(line); err != nil {
		s.logger.Error("error writing price log", zap.String("path", s.path), zap.Error(err))
		return errors.Wrap(err, "writing price log")
	}
	if err = f.Sync(); err != nil {
		return errors.Wrap(err, "syncing price log")
	}

	s.logger.Info("data successfully written", zap.String("path", s.path))
	return nil
}

// dropTornTail truncates the file back to its last newline.
func (s *LinesStorage) dropTornTail(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size == 0 {
		return nil
	}

	last := make([]byte, 1)
	if _, err = f.ReadAt(last, size-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}

	data := make([]byte, size)
	if _, err = f.ReadAt(data, 0); err != nil && err != io.EOF {
		return err
	}
	keep := int64(bytes.LastIndexByte(data, '\n') + 1)

	s.logger.Warn("dropping torn last line of price log", zap.String("path", f.Name()), zap.Int64("bytes", size-keep))
	return f.Truncate(keep)
}
