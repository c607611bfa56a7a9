package metric

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/textdiv/codec"
)

// modifierSep separates the modifier from the base name: "token_sort:levenshtein".
const modifierSep = ":"

// Options carries construction-time parameters shared by all constructors.
type Options struct {
	// Level is the compression level for compression-based metrics;
	// codec.DefaultLevel selects the codec default. Ignored by other kinds.
	Level int
}

// DefaultOptions returns Options with the codec default level.
func DefaultOptions() Options { return Options{Level: codec.DefaultLevel} }

// Constructor builds a metric instance from Options.
type Constructor func(Options) (Metric, error)

// Registry is a name → constructor table kept in registration order.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	names []string
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a base metric constructor under name.
// Names must be non-empty, unique, and must not contain the modifier separator.
//
// Errors: ErrUnknownMetric for an unusable name or nil constructor,
// ErrDuplicateMetric.
// Complexity: O(1) amortized.
func (r *Registry) Register(name string, ctor Constructor) error {
	if name == "" || strings.Contains(name, modifierSep) || ctor == nil {
		return fmt.Errorf("%w: invalid registration %q", ErrUnknownMetric, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.ctors[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateMetric, name)
	}
	r.ctors[name] = ctor
	r.names = append(r.names, name)

	return nil
}

// Names returns the registered base names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.names...)
}

// Lookup builds the metric called name. Both the base name and an optional
// "<modifier>:" prefix are resolved fuzzily (see Resolve); the returned
// string is the canonical name actually built, so callers can report a
// correction.
//
// Errors:
//   - ErrUnknownMetric for an empty name or an empty registry.
//   - ErrUnknownModifier for an empty modifier prefix.
//   - ErrNotComposable when a modifier targets a compression-based metric.
//   - Any constructor error (e.g. codec.ErrUnknownCodec).
func (r *Registry) Lookup(name string, opts Options) (Metric, string, error) {
	modName, baseName, modified := strings.Cut(name, modifierSep)
	if !modified {
		baseName, modName = modName, ""
	}
	if modified && modName == "" {
		return nil, "", fmt.Errorf("%w: empty prefix in %q", ErrUnknownModifier, name)
	}

	r.mu.RLock()
	resolved, _, ok := Resolve(baseName, r.names)
	ctor := r.ctors[resolved]
	r.mu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}

	base, err := ctor(opts)
	if err != nil {
		return nil, "", err
	}
	if !modified {
		return base, base.Name(), nil
	}

	mod, _, _ := Resolve(modName, modifierNames)
	m, err := Compose(mod, base)
	if err != nil {
		return nil, "", err
	}

	return m, m.Name(), nil
}

// infallible lifts a constructor that cannot fail.
func infallible(fn func() Metric) Constructor {
	return func(Options) (Metric, error) { return fn(), nil }
}

// Default returns a registry holding every built-in metric: the edit-based
// metrics, the token metrics, then ncd_<codec> for each codec in
// codec.Names() order.
func Default() *Registry {
	r := NewRegistry()
	builtins := []struct {
		name string
		fn   func() Metric
	}{
		{"levenshtein", newLevenshtein},
		{"damerau_levenshtein", newDamerauLevenshtein},
		{"hamming", newHamming},
		{"lcsseq", newLCSSeq},
		{"jaro", newJaro},
		{"jaro_winkler", newJaroWinkler},
		{"diff_lines", newDiffLines},
		{"jaccard", newJaccard},
		{"sorensen_dice", newSorensenDice},
		{"overlap", newOverlap},
		{"cosine", newCosine},
		{"token_jaccard", newTokenJaccard},
	}
	for _, b := range builtins {
		_ = r.Register(b.name, infallible(b.fn)) // static names, cannot collide
	}
	for _, name := range codec.Names() {
		codecName := name
		_ = r.Register("ncd_"+codecName, func(o Options) (Metric, error) {
			c, err := codec.New(codecName, o.Level)
			if err != nil {
				return nil, err
			}

			return NewNCD(c), nil
		})
	}

	return r
}
