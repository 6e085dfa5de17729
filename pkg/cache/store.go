// Package cache keeps rendered PNGs on disk so re-exporting an unchanged
// scene skips layout and rasterisation. Entries are evicted least
// recently used first once the store exceeds its size limit, and expire
// after a TTL.
package cache

import (
	"container/list"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const ext = ".png"

// Config holds configuration for a Store.
type Config struct {
	// Dir is the directory entries are stored in. It is created if missing.
	Dir string
	// MaxSizeMB bounds the total size of stored entries. Default: 50.
	MaxSizeMB int
	// TTL is how long an entry stays valid. Zero means entries never
	// expire by age.
	TTL    time.Duration
	Logger *slog.Logger
}

// Stats holds runtime statistics for a Store.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int64
	Entries   int
}

type entry struct {
	key     string
	size    int64
	created time.Time
}

// Store is a disk-backed cache keyed by Key. Each entry is one file named
// after its key. Writes are atomic via temp-file-then-rename.
type Store struct {
	dir     string
	maxSize int64
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	lru       *list.List               // front = most recently used
	items     map[string]*list.Element // key -> element holding *entry
	size      int64
	hits      int64
	misses    int64
	evictions int64
}

// NewStore opens the store in cfg.Dir, indexing entries already on disk
// oldest first.
func NewStore(cfg Config) (*Store, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 50
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", cfg.Dir, err)
	}

	s := &Store{
		dir:     cfg.Dir,
		maxSize: int64(cfg.MaxSizeMB) << 20,
		ttl:     cfg.TTL,
		logger:  cfg.Logger,
		now:     time.Now,
		lru:     list.New(),
		items:   make(map[string]*list.Element),
	}
	if err := s.scan(); err != nil {
		return nil, fmt.Errorf("cache: scan %s: %w", cfg.Dir, err)
	}
	return s, nil
}

func (s *Store) scan() error {
	des, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	var found []*entry
	for _, de := range des {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		found = append(found, &entry{
			key:     strings.TrimSuffix(name, ext),
			size:    info.Size(),
			created: info.ModTime(),
		})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].created.Before(found[j].created) })

	for _, e := range found {
		s.items[e.key] = s.lru.PushFront(e)
		s.size += e.size
	}
	s.evictLocked()
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+ext)
}

// Get returns the bytes stored under key. Expired entries are removed and
// reported as misses.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if !ok {
		s.misses++
		return nil, false
	}
	e := elem.Value.(*entry)
	if s.ttl > 0 && s.now().Sub(e.created) > s.ttl {
		s.removeLocked(elem)
		s.misses++
		return nil, false
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		s.logger.Debug("cache entry unreadable", "key", key, "error", err)
		s.removeLocked(elem)
		s.misses++
		return nil, false
	}
	s.lru.MoveToFront(elem)
	s.hits++
	return data, true
}

// Put stores data under key, replacing any previous entry, and evicts
// least recently used entries until the store fits its size limit.
func (s *Store) Put(key string, data []byte) error {
	if err := atomicWrite(s.path(key), data); err != nil {
		return fmt.Errorf("cache: write %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry{key: key, size: int64(len(data)), created: s.now()}
	if elem, ok := s.items[key]; ok {
		s.size -= elem.Value.(*entry).size
		elem.Value = e
		s.lru.MoveToFront(elem)
	} else {
		s.items[key] = s.lru.PushFront(e)
	}
	s.size += e.size
	s.evictLocked()
	return nil
}

// Delete removes the entry under key, if any.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[key]; ok {
		s.removeLocked(elem)
	}
}

// Clear removes every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, elem := range s.items {
		if err := os.Remove(s.path(elem.Value.(*entry).key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("cache: clear: %w", err)
		}
	}
	s.lru.Init()
	s.items = make(map[string]*list.Element)
	s.size = 0
	return nil
}

// Stats returns a snapshot of the store's counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
		Size:      s.size,
		Entries:   len(s.items),
	}
}

func (s *Store) evictLocked() {
	for s.size > s.maxSize && s.lru.Len() > 1 {
		s.removeLocked(s.lru.Back())
		s.evictions++
	}
}

func (s *Store) removeLocked(elem *list.Element) {
	e := elem.Value.(*entry)
	if err := os.Remove(s.path(e.key)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("cache entry not removed", "key", e.key, "error", err)
	}
	s.lru.Remove(elem)
	delete(s.items, e.key)
	s.size -= e.size
}

// atomicWrite writes data to a temp file in the target directory and
// renames it into place.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
