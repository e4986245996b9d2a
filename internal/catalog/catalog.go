// Package catalog loads the cipher-name to structural-metadata mapping
// used for display. It never influences scoring (spec §4.5): the
// classifier consults internal/profiles, not this package.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/zeebo/blake3"
)

//go:embed catalogdata/catalog.json
var embeddedFS embed.FS

const embeddedPath = "catalogdata/catalog.json"

// Metadata is the structural description of one cipher, deserialized
// directly from the JSON catalog shape in spec §6.
type Metadata struct {
	Types     []string `json:"types"`
	Subtypes  []string `json:"subtypes"`
	Subtypes2 []string `json:"subtypes2"`
	Table     []string `json:"table"`
	Size      string   `json:"size"`
	Notes     string   `json:"notes"`
}

// Catalog is the immutable, process-wide name-to-Metadata mapping, loaded
// once at startup.
type Catalog struct {
	entries     map[string]Metadata
	fingerprint string
}

// Load reads the embedded default catalog asset.
func Load() (*Catalog, error) {
	data, err := embeddedFS.ReadFile(embeddedPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParseError, err)
	}
	return loadBytes(data)
}

// LoadFile reads a catalog JSON file from disk, overriding the embedded
// default (the CLI's --catalog flag uses this).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParseError, err)
	}
	return loadBytes(data)
}

func loadBytes(data []byte) (*Catalog, error) {
	var raw map[string]Metadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParseError, err)
	}
	for name, m := range raw {
		if m.Size == "" {
			return nil, fmt.Errorf("%w: %q missing required key %q", ErrCatalogParseError, name, "size")
		}
	}

	sum := blake3.Sum256(data)
	return &Catalog{
		entries:     raw,
		fingerprint: fmt.Sprintf("%x", sum),
	}, nil
}

// Fingerprint returns the blake3 content hash of the raw catalog bytes
// this Catalog was loaded from, for --verbose diagnostic logging: two
// processes that print the same fingerprint loaded byte-identical
// catalogs without needing to diff the file itself.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Lookup returns the metadata for a cipher name, or the "unknown" sentinel
// metadata if the name isn't recognized.
func (c *Catalog) Lookup(name string) Metadata {
	if m, ok := c.entries[name]; ok {
		return m
	}
	return Metadata{Size: unknownSentinel, Notes: unknownSentinel}
}

// PrimaryType returns the first declared type for a cipher, or the
// "unknown" sentinel.
func (c *Catalog) PrimaryType(name string) string {
	m, ok := c.entries[name]
	if !ok || len(m.Types) == 0 {
		return unknownSentinel
	}
	return m.Types[0]
}

// SizeTag returns the declared size tag for a cipher, or the "unknown"
// sentinel.
func (c *Catalog) SizeTag(name string) string {
	m, ok := c.entries[name]
	if !ok {
		return unknownSentinel
	}
	return m.Size
}

// Names returns every cipher name in the catalog, sorted ascending.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports how many cipher entries the catalog holds.
func (c *Catalog) Len() int {
	return len(c.entries)
}
