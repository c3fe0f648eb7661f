package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
)

// Sentinel errors for the catalog
var (
	ErrDuplicateName = errors.New("duplicate item name")
	ErrInvalidConfig = errors.New("invalid item configuration")
	ErrUnknownItem   = errors.New("unknown item")
)

// Config represents the JSON configuration for item definitions
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	Name         string         `json:"name"`
	Slot         string         `json:"slot"`
	Rarity       domain.Rarity  `json:"rarity"`
	BasePower    int            `json:"base_power"`
	LuckyOptions map[string]int `json:"lucky_options,omitempty"`
	Description  string         `json:"description,omitempty"`
}

// Catalog resolves item names to definitions and mints fresh item instances.
type Catalog interface {
	Lookup(name string) (*Def, bool)
	Mint(name string) (domain.Item, error)
	Names() []string
	Reload() error
}

type catalog struct {
	path string

	mu   sync.RWMutex
	defs []Def

	// memoizes normalized-name lookups; invalidated wholesale on reload
	cache *expirable.LRU[string, *Def]
}

// NewCatalog loads item definitions from the given JSON file.
func NewCatalog(path string, cacheSize int, cacheTTL time.Duration) (Catalog, error) {
	c := &catalog{
		path:  path,
		cache: expirable.NewLRU[string, *Def](cacheSize, nil, cacheTTL),
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads and validates the definition file, replacing the working
// set and dropping the lookup cache.
func (c *catalog) Reload() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to read item config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := validate(&config); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs = config.Items
	c.cache.Purge()
	return nil
}

func validate(config *Config) error {
	if config.Version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(config.Items))
	for _, def := range config.Items {
		if def.Name == "" || def.Slot == "" || def.Rarity == "" {
			return fmt.Errorf("%w: definition %q missing name, slot or rarity", ErrInvalidConfig, def.Name)
		}
		if strings.Contains(def.Name, domain.CompositeKeySeparator) {
			return fmt.Errorf("%w: name %q contains reserved separator", ErrInvalidConfig, def.Name)
		}
		if def.BasePower < 0 {
			return fmt.Errorf("%w: definition %q has negative power", ErrInvalidConfig, def.Name)
		}
		key := normalize(def.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateName, def.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Lookup finds a definition by case-insensitive name. The returned Def is a
// copy; mutating it does not affect the catalog.
func (c *catalog) Lookup(name string) (*Def, bool) {
	key := normalize(name)

	if cached, ok := c.cache.Get(key); ok {
		out := cloneDef(*cached)
		return &out, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.defs {
		if normalize(c.defs[i].Name) == key {
			found := cloneDef(c.defs[i])
			c.cache.Add(key, &found)
			out := cloneDef(found)
			return &out, true
		}
	}
	return nil, false
}

// Mint creates a fresh item instance from a definition, stamped with a new
// instance ID. Acquisition time is left to the store.
func (c *catalog) Mint(name string) (domain.Item, error) {
	def, ok := c.Lookup(name)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}

	item := domain.Item{
		ID:     uuid.NewString(),
		Name:   def.Name,
		Slot:   def.Slot,
		Rarity: def.Rarity,
		Power:  def.BasePower,
	}
	if len(def.LuckyOptions) > 0 {
		item.LuckyOptions = make(map[string]int, len(def.LuckyOptions))
		for k, v := range def.LuckyOptions {
			item.LuckyOptions[k] = v
		}
	}
	return item, nil
}

// Names returns all defined item names in file order.
func (c *catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.defs))
	for i, def := range c.defs {
		names[i] = def.Name
	}
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func cloneDef(def Def) Def {
	if def.LuckyOptions != nil {
		opts := make(map[string]int, len(def.LuckyOptions))
		for k, v := range def.LuckyOptions {
			opts[k] = v
		}
		def.LuckyOptions = opts
	}
	return def
}
