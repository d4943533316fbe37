package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/trungle-dev/docqa-be/types"
	"github.com/trungle-dev/docqa-be/utils"
)

// DocumentStore owns the persisted upload bytes and the in-memory extracted
// text cache. The client-supplied filename is the lookup key; bytes land
// under a sanitized name inside uploadDir so a hostile filename can never
// escape it. The cache is an optimization: a miss re-extracts from the
// persisted bytes and must produce the same text.
type DocumentStore struct {
	uploadDir string
	extractor *ExtractService

	mu    sync.Mutex
	cache map[string]string
	locks map[string]*sync.Mutex
}

func NewDocumentStore(uploadDir string, extractor *ExtractService) (*DocumentStore, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DocumentStore{
		uploadDir: uploadDir,
		extractor: extractor,
		cache:     make(map[string]string),
		locks:     make(map[string]*sync.Mutex),
	}, nil
}

// fileLock returns the mutex serializing filesystem access for one storage
// slot. Locks are keyed by the sanitized storage key, so two client
// filenames that collide on one slot share a lock while distinct slots stay
// independent. The map holds one mutex per key ever seen; the set is
// bounded by the distinct names uploaded over the process lifetime.
func (s *DocumentStore) fileLock(filename string) *sync.Mutex {
	key := utils.SafeFileName(filename)
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func (s *DocumentStore) storagePath(filename string) string {
	return filepath.Join(s.uploadDir, utils.SafeFileName(filename))
}

// Put validates the filename extension, persists the uploaded bytes,
// extracts their text and caches it. The bytes stay on disk even when
// extraction fails, so the text can be retried later via Get; the cache is
// only written on success. Uploading an existing filename overwrites it.
func (s *DocumentStore) Put(filename string, data []byte) (string, error) {
	format, err := types.FormatFromFilename(filename)
	if err != nil {
		return "", err
	}

	lock := s.fileLock(filename)
	lock.Lock()
	defer lock.Unlock()

	if err := os.WriteFile(s.storagePath(filename), data, 0644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	text, err := s.extractor.Extract(data, format)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cache[filename] = text
	s.mu.Unlock()
	return text, nil
}

// Get returns the extracted text for filename. A cache hit returns without
// touching the filesystem; a miss re-reads the persisted bytes, re-extracts
// and repopulates the cache. The miss path holds the same per-slot lock as
// Put, so it never reads bytes mid-write or clobbers the cache with text
// extracted from bytes a concurrent Put has since replaced.
func (s *DocumentStore) Get(filename string) (string, error) {
	s.mu.Lock()
	text, ok := s.cache[filename]
	s.mu.Unlock()
	if ok {
		return text, nil
	}

	lock := s.fileLock(filename)
	lock.Lock()
	defer lock.Unlock()

	// A Put may have filled the cache while we waited for the lock.
	s.mu.Lock()
	text, ok = s.cache[filename]
	s.mu.Unlock()
	if ok {
		return text, nil
	}

	data, err := os.ReadFile(s.storagePath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", types.Errorf(types.KindNotFound, "file %q not found", filename)
		}
		return "", fmt.Errorf("read upload: %w", err)
	}

	format, err := types.FormatFromFilename(filename)
	if err != nil {
		return "", err
	}
	text, err = s.extractor.Extract(data, format)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cache[filename] = text
	s.mu.Unlock()
	return text, nil
}

// FilePath returns the on-disk path of the persisted bytes for filename.
func (s *DocumentStore) FilePath(filename string) (string, error) {
	path := s.storagePath(filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", types.Errorf(types.KindNotFound, "file %q not found", filename)
		}
		return "", fmt.Errorf("stat upload: %w", err)
	}
	return path, nil
}

// List returns the stored upload names, sorted.
func (s *DocumentStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return nil, fmt.Errorf("read upload directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
