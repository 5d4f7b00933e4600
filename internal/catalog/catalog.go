package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed seed.json
var seedFS embed.FS

// catalogFile is the on-disk shape of a catalog data file.
type catalogFile struct {
	Parts []PartRecord `json:"parts"`
}

// Catalog is an immutable, in-memory collection of part records. It is
// built once at startup and safe for concurrent reads.
type Catalog struct {
	parts    []PartRecord
	byNumber map[string]int
}

// New builds a catalog from the given records. Records are kept in the
// order provided; later duplicates of a part number are dropped.
func New(parts []PartRecord) *Catalog {
	c := &Catalog{
		byNumber: make(map[string]int, len(parts)),
	}
	for _, p := range parts {
		key := strings.ToLower(p.PartNumber)
		if key == "" {
			continue
		}
		if _, exists := c.byNumber[key]; exists {
			continue
		}
		c.byNumber[key] = len(c.parts)
		c.parts = append(c.parts, p)
	}
	return c
}

// LoadEmbedded builds the catalog from the seed data compiled into the
// binary.
func LoadEmbedded() (*Catalog, error) {
	data, err := seedFS.ReadFile("seed.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded seed: %w", err)
	}
	return parse(data, "seed.json")
}

// Load builds the catalog from a single JSON data file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadDir builds the catalog from every data file under dir whose relative
// path matches one of the given glob patterns (e.g. "**/*.json"). Files are
// merged in lexical path order so the catalog order is deterministic.
func LoadDir(dir string, patterns []string) (*Catalog, error) {
	if len(patterns) == 0 {
		patterns = []string{"**/*.json"}
	}

	var paths []string
	root := os.DirFS(dir)
	err := fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, pat := range patterns {
			ok, err := doublestar.Match(pat, path)
			if err != nil {
				return fmt.Errorf("bad catalog pattern %q: %w", pat, err)
			}
			if ok {
				paths = append(paths, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning catalog dir %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files in %s matching %v", dir, patterns)
	}
	sort.Strings(paths)

	var all []PartRecord
	for _, p := range paths {
		data, err := os.ReadFile(filepath.Join(dir, p))
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", p, err)
		}
		var cf catalogFile
		if err := json.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", p, err)
		}
		all = append(all, cf.Parts...)
	}
	return New(all), nil
}

func parse(data []byte, source string) (*Catalog, error) {
	var cf catalogFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", source, err)
	}
	if len(cf.Parts) == 0 {
		return nil, fmt.Errorf("catalog %s contains no parts", source)
	}
	return New(cf.Parts), nil
}

// Len returns the number of parts in the catalog.
func (c *Catalog) Len() int { return len(c.parts) }

// Parts returns all records in catalog order.
func (c *Catalog) Parts() []PartRecord { return c.parts }
