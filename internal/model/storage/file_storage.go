package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/entity/price"
)

const filePerm = 0o644

// FileStorage keeps the whole price log as one pretty-printed JSON array.
// Every append rewrites the file through a temp file and a rename.
type FileStorage struct {
	path   string
	logger *zap.Logger
}

func NewFileStorage(path string, logger *zap.Logger) *FileStorage {
	return &FileStorage{path: path, logger: logger}
}

func (s *FileStorage) Path() string {
	return s.path
}

// Load returns the stored records. A missing file is an empty log, and so
// is valid JSON that is not an array. Array elements that are not records
// are skipped; Append keeps them on disk.
func (s *FileStorage) Load() ([]price.Record, error) {
	elems, err := s.loadRaw()
	if err != nil {
		return nil, err
	}

	records := make([]price.Record, 0, len(elems))
	for i, elem := range elems {
		var rec price.Record
		if err = json.Unmarshal(elem, &rec); err != nil {
			s.logger.Warn("skipping price log element that is not a record",
				zap.String("path", s.path), zap.Int("index", i), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// loadRaw returns the array elements exactly as they are stored.
func (s *FileStorage) loadRaw() ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		s.logger.Error("error reading price log", zap.String("path", s.path), zap.Error(err))
		return nil, errors.Wrap(err, "reading price log")
	}

	elems, err := s.decodeArray(data)
	if err != nil {
		s.logger.Error("error parsing price log", zap.String("path", s.path), zap.Error(err))
		return nil, errors.Wrap(err, "parsing price log")
	}
	return elems, nil
}

func (s *FileStorage) decodeArray(data []byte) ([]json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []json.RawMessage{}, nil
	}
	if trimmed[0] != '[' {
		s.logger.Warn("price log is not an array, starting over", zap.String("path", s.path))
		return []json.RawMessage{}, nil
	}

	elems := make([]json.RawMessage, 0)
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, err
	}
	return elems, nil
}

// Save replaces the file content with records.
func (s *FileStorage) Save(records []price.Record) error {
	if records == nil {
		records = []price.Record{}
	}
	return s.write(records)
}

// Append adds rec to the end of the log. Existing elements are written back
// as stored, including fields a Record does not know about.
func (s *FileStorage) Append(rec price.Record) error {
	elems, err := s.loadRaw()
	if err != nil {
		return err
	}

	elem, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshalling record")
	}
	elems = append(elems, elem)

	if err = s.write(elems); err != nil {
		return err
	}
	s.logger.Info("data successfully written", zap.String("path", s.path), zap.Int("records", len(elems)))
	return nil
}

func (s *FileStorage) write(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling price log")
	}

	if err = writeAtomic(s.path, data); err != nil {
		s.logger.Error("error writing price log", zap.String("path", s.path), zap.Error(err))
		return err
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating log dir")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}
	return errors.Wrap(os.Rename(tmpName, path), "replacing price log")
}
