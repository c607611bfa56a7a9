// Package corpus turns file and directory arguments into the ordered item
// collection compared by the distance builder.
//
// Directories are walked recursively. Files are kept when their extension
// matches the filter (case-insensitive, leading dot optional); an empty
// filter keeps everything. Items are sorted by name so indices are stable
// across runs. Names are relative to the directory argument they were found
// under, or the cleaned path for file arguments. When two items would share
// a name, each of them is qualified with its root's base name, and failing
// that with its cleaned path, so names are always unique.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/textdiv"
)

var (
	// ErrNoItems is returned when the arguments select no file.
	ErrNoItems = fmt.Errorf("corpus: no matching files: %w", textdiv.ErrConfiguration)

	// ErrDuplicateName is returned when two items cannot be told apart by
	// any of the naming schemes.
	ErrDuplicateName = fmt.Errorf("corpus: duplicate item name: %w", textdiv.ErrConfiguration)

	// ErrRead wraps filesystem failures.
	ErrRead = fmt.Errorf("corpus: read failed: %w", textdiv.ErrComputation)
)

// Item is one text sample.
type Item struct {
	Name    string // stable display name
	Path    string // filesystem path
	Content string
}

// Corpus is an ordered, immutable item collection.
type Corpus struct {
	Items []Item
}

// Len returns the number of items.
func (c *Corpus) Len() int { return len(c.Items) }

// Names returns the item names in index order.
func (c *Corpus) Names() []string {
	out := make([]string, len(c.Items))
	for i, it := range c.Items {
		out[i] = it.Name
	}

	return out
}

// Contents returns the item contents in index order.
func (c *Corpus) Contents() []string {
	out := make([]string, len(c.Items))
	for i, it := range c.Items {
		out[i] = it.Content
	}

	return out
}

// TotalBytes sums the content sizes.
func (c *Corpus) TotalBytes() uint64 {
	var n uint64
	for _, it := range c.Items {
		n += uint64(len(it.Content))
	}

	return n
}

// Summary is a one-line human description, e.g. "12 files, 48 kB".
func (c *Corpus) Summary() string {
	return fmt.Sprintf("%d files, %s", c.Len(), humanize.Bytes(c.TotalBytes()))
}

// normalizeExts lower-cases the filter and adds the leading dot.
func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}

	return out
}

func matches(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}

	return slices.Contains(exts, strings.ToLower(filepath.Ext(path)))
}

// candidate is an item plus the fallback names used to break collisions.
type candidate struct {
	Item
	qualified string // root base name joined with the relative name
}

// uniqueNames renames colliding items, first to their qualified name, then
// to their cleaned path. Items that never collide keep the short name.
func uniqueNames(cands []candidate) error {
	fallbacks := []func(c *candidate) string{
		func(c *candidate) string { return c.qualified },
		func(c *candidate) string { return filepath.ToSlash(filepath.Clean(c.Path)) },
	}
	for _, next := range fallbacks {
		dup := duplicated(cands)
		if len(dup) == 0 {
			return nil
		}
		for i := range cands {
			if dup[cands[i].Name] {
				cands[i].Name = next(&cands[i])
			}
		}
	}
	if dup := duplicated(cands); len(dup) > 0 {
		names := slices.Sorted(maps.Keys(dup))
		return fmt.Errorf("%w: %q", ErrDuplicateName, names[0])
	}

	return nil
}

func duplicated(cands []candidate) map[string]bool {
	count := make(map[string]int, len(cands))
	for _, c := range cands {
		count[c.Name]++
	}
	dup := make(map[string]bool)
	for name, n := range count {
		if n > 1 {
			dup[name] = true
		}
	}

	return dup
}

// Load reads every file selected by paths and exts.
//
// Errors: ErrNoItems when nothing matched; ErrDuplicateName when two items
// cannot be given distinct names; ErrRead for missing paths or unreadable
// files.
func Load(paths []string, exts []string) (*Corpus, error) {
	filter := normalizeExts(exts)
	seen := make(map[string]bool)
	var cands []candidate

	add := func(name, qualified, path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		if seen[abs] {
			return nil
		}
		seen[abs] = true
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		cands = append(cands, candidate{
			Item:      Item{Name: filepath.ToSlash(name), Path: path, Content: string(data)},
			qualified: filepath.ToSlash(qualified),
		})

		return nil
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		if !info.IsDir() {
			if matches(root, filter) {
				if err = add(filepath.Clean(root), filepath.Clean(root), root); err != nil {
					return nil, err
				}
			}
			continue
		}
		base := filepath.Base(filepath.Clean(root))
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, werr error) error {
			if werr != nil {
				return werr
			}
			if d.IsDir() || !d.Type().IsRegular() || !matches(path, filter) {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			return add(rel, filepath.Join(base, rel), path)
		})
		if err != nil {
			if errors.Is(err, ErrRead) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
	if len(cands) == 0 {
		return nil, ErrNoItems
	}
	if err := uniqueNames(cands); err != nil {
		return nil, err
	}
	items := make([]Item, len(cands))
	for i, c := range cands {
		items[i] = c.Item
	}
	slices.SortStableFunc(items, func(a, b Item) int { return strings.Compare(a.Name, b.Name) })

	return &Corpus{Items: items}, nil
}

// FromStrings builds a corpus from in-memory samples named "0", "1", ...
func FromStrings(samples ...string) *Corpus {
	items := make([]Item, len(samples))
	for i, s := range samples {
		items[i] = Item{Name: fmt.Sprint(i), Content: s}
	}

	return &Corpus{Items: items}
}
