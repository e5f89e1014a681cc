package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/PolarWolf314/holecard/internal/configs"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

const registryFileName = "decks.toml"

type deckEntry struct {
	Path         string    `toml:"path"`
	LastAccessAt time.Time `toml:"last_access_at"`
}

type registryFile struct {
	Active string               `toml:"active"`
	Decks  map[string]deckEntry `toml:"decks"`
}

// DeckInfo describes one registered deck.
type DeckInfo struct {
	Name         string
	Path         string
	LastAccessAt time.Time
	Active       bool
}

// Registry is the named directory of deck files persisted at
// <dir>/decks.toml. Removing a deck drops the registry entry only; the deck
// file and its credential-store items stay put so removal is recoverable.
type Registry struct {
	dir string
}

// New creates a registry rooted at the config directory.
func New(dir string) *Registry {
	return &Registry{dir: dir}
}

func (r *Registry) path() string {
	return filepath.Join(r.dir, registryFileName)
}

func (r *Registry) load() (*registryFile, error) {
	file := &registryFile{Decks: make(map[string]deckEntry)}

	if _, err := os.Stat(r.path()); os.IsNotExist(err) {
		return file, nil
	}

	if err := configs.LoadTOML(r.path(), file); err != nil {
		return nil, fmt.Errorf("failed to load deck registry: %w", err)
	}
	if file.Decks == nil {
		file.Decks = make(map[string]deckEntry)
	}

	return file, nil
}

func (r *Registry) save(file *registryFile) error {
	if err := configs.SaveTOML(r.path(), file); err != nil {
		return fmt.Errorf("failed to save deck registry: %w", err)
	}
	return nil
}

// Add registers a deck. The first registered deck becomes active.
func (r *Registry) Add(name, path string) error {
	if name == "" || path == "" {
		return fmt.Errorf("%w: deck name and path must not be empty", herrors.ErrInvalidInput)
	}

	file, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := file.Decks[name]; ok {
		return fmt.Errorf("%w: deck %q is already registered", herrors.ErrInvalidInput, name)
	}

	file.Decks[name] = deckEntry{
		Path:         path,
		LastAccessAt: time.Now().UTC(),
	}
	if file.Active == "" {
		file.Active = name
	}

	return r.save(file)
}

// Remove drops a deck's registry entry. The deck file and credential-store
// entries are untouched. When the active deck is removed, the first
// remaining deck by name becomes active.
func (r *Registry) Remove(name string) error {
	file, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := file.Decks[name]; !ok {
		return fmt.Errorf("deck %q: %w", name, herrors.ErrNotFound)
	}
	delete(file.Decks, name)

	if file.Active == name {
		file.Active = ""
		names := sortedNames(file.Decks)
		if len(names) > 0 {
			file.Active = names[0]
		}
	}

	return r.save(file)
}

// List returns every registered deck sorted by name.
func (r *Registry) List() ([]DeckInfo, error) {
	file, err := r.load()
	if err != nil {
		return nil, err
	}

	infos := make([]DeckInfo, 0, len(file.Decks))
	for _, name := range sortedNames(file.Decks) {
		entry := file.Decks[name]
		infos = append(infos, DeckInfo{
			Name:         name,
			Path:         entry.Path,
			LastAccessAt: entry.LastAccessAt,
			Active:       name == file.Active,
		})
	}

	return infos, nil
}

// Get returns one registered deck by name.
func (r *Registry) Get(name string) (DeckInfo, error) {
	file, err := r.load()
	if err != nil {
		return DeckInfo{}, err
	}

	entry, ok := file.Decks[name]
	if !ok {
		return DeckInfo{}, fmt.Errorf("deck %q: %w", name, herrors.ErrNotFound)
	}

	return DeckInfo{
		Name:         name,
		Path:         entry.Path,
		LastAccessAt: entry.LastAccessAt,
		Active:       name == file.Active,
	}, nil
}

// SetActive switches the active deck. Session invalidation for the previous
// deck is handled by the caller, which owns the session manager.
func (r *Registry) SetActive(name string) error {
	file, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := file.Decks[name]; !ok {
		return fmt.Errorf("deck %q: %w", name, herrors.ErrNotFound)
	}

	file.Active = name
	return r.save(file)
}

// Active returns the currently active deck.
func (r *Registry) Active() (DeckInfo, error) {
	file, err := r.load()
	if err != nil {
		return DeckInfo{}, err
	}

	if file.Active == "" {
		return DeckInfo{}, fmt.Errorf("no active deck: %w", herrors.ErrNotFound)
	}

	return r.Get(file.Active)
}

// Touch refreshes a deck's last-access timestamp.
func (r *Registry) Touch(name string) error {
	file, err := r.load()
	if err != nil {
		return err
	}

	entry, ok := file.Decks[name]
	if !ok {
		return fmt.Errorf("deck %q: %w", name, herrors.ErrNotFound)
	}

	entry.LastAccessAt = time.Now().UTC()
	file.Decks[name] = entry
	return r.save(file)
}

func sortedNames(decks map[string]deckEntry) []string {
	names := make([]string, 0, len(decks))
	for name := range decks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
