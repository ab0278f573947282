package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"hus/config"
)

// Collection names. Each one is persisted as an independent JSON file;
// there is no transaction spanning more than one of them.
const (
	CollectionRooms    = "rooms"
	CollectionBookings = "bookings"
	CollectionGuests   = "guests"
	CollectionPayments = "payments"
	CollectionUsers    = "users"
	CollectionLogs     = "activity_logs"
	CollectionSettings = "settings"
)

// Store is a key-value persistence layer mapping named collections to
// serialized JSON documents. Reads of missing or corrupt data fail soft:
// callers supply a default through Load.
type Store interface {
	Read(collection string) ([]byte, bool)
	Write(collection string, data []byte) error
	WipeAll() error
	Collections() []string
}

type fileStore struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

func New(cfg *config.Config) (Store, error) {
	return NewWithFs(afero.NewOsFs(), cfg.Store.Dir)
}

func NewWithFs(fs afero.Fs, dir string) (Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &fileStore{fs: fs, dir: dir}, nil
}

func (s *fileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *fileStore) Read(collection string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(collection))
	if err != nil {
		return nil, false
	}

	return data, true
}

func (s *fileStore) Write(collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := afero.WriteFile(s.fs, s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	return nil
}

// WipeAll destroys every persisted collection. Irreversible.
func (s *fileStore) WipeAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, collection := range collections {
		err := s.fs.Remove(s.path(collection))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove collection %s: %w", collection, err)
		}
	}

	return nil
}

func (s *fileStore) Collections() []string {
	res := make([]string, len(collections))
	copy(res, collections)

	return res
}

var collections = []string{
	CollectionRooms,
	CollectionBookings,
	CollectionGuests,
	CollectionPayments,
	CollectionUsers,
	CollectionLogs,
	CollectionSettings,
}

// Load deserializes a collection into T. Missing or corrupt data returns
// the caller-supplied default; persistence read failures are never
// surfaced to the user.
func Load[T any](s Store, collection string, def T) T {
	data, ok := s.Read(collection)
	if !ok {
		return def
	}

	var res T
	if err := json.Unmarshal(data, &res); err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("stored collection is unreadable, substituting default")

		return def
	}

	return res
}

// Save serializes a value and writes it as the whole collection.
func Save[T any](s Store, collection string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", collection, err)
	}

	return s.Write(collection, data)
}
