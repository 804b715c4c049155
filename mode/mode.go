package mode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/scale"
	"github.com/jsphweid/scaledex/util"
	"gopkg.in/yaml.v3"
)

var ErrUnknownMode = errors.New("unknown mode")

type Mode struct {
	Name    string
	Formula scale.Formula
}

func (m Mode) Build(root pitch.Pitch) (scale.Scale, error) {
	return scale.New(m.Name, root, m.Formula)
}

// Registry maps canonical mode names to formulas.
type Registry map[string]scale.Formula

// Default returns a fresh copy of the built-in modes.
func Default() Registry {
	r := make(Registry, len(builtin))
	for name, f := range builtin {
		r[name] = f
	}
	return r
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(name)
}

func (r Registry) Lookup(name string) (Mode, error) {
	key := normalize(name)
	if f, ok := r[key]; ok {
		return Mode{Name: key, Formula: f}, nil
	}
	if alias, ok := aliases[key]; ok {
		if f, ok := r[alias]; ok {
			return Mode{Name: alias, Formula: f}, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

func (r Registry) Names() []string {
	return util.SortedKeys(r)
}

func (r Registry) Add(name string, f scale.Formula) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("%w: empty mode name", scale.ErrInvalidFormula)
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("mode %q: %w", name, err)
	}
	r[key] = f
	return nil
}

type modesFile struct {
	Modes map[string]string `yaml:"modes"`
}

// Load reads extra modes from YAML into r, e.g.
//
//	modes:
//	  hungarian-minor: "1 2 b3 #4 5 b6 7"
func (r Registry) Load(reader io.Reader) error {
	var mf modesFile
	if err := yaml.NewDecoder(reader).Decode(&mf); err != nil && err != io.EOF {
		return fmt.Errorf("could not decode modes: %w", err)
	}

	for _, name := range util.SortedKeys(mf.Modes) {
		f, err := scale.ParseFormula(mf.Modes[name])
		if err != nil {
			return fmt.Errorf("mode %q: %w", name, err)
		}
		if err := r.Add(name, f); err != nil {
			return err
		}
	}
	return nil
}

func (r Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open modes file: %w", err)
	}
	defer f.Close()
	return r.Load(f)
}

type Result struct {
	Scale scale.Scale
	Err   error
}

// BuildAll builds every registered mode on root. Each mode is independent, so
// one mode failing to spell leaves the others untouched.
func (r Registry) BuildAll(root pitch.Pitch) map[string]Result {
	names := r.Names()
	results := make([]Result, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, m Mode) {
			defer wg.Done()
			built, err := m.Build(root)
			results[i] = Result{Scale: built, Err: err}
		}(i, Mode{Name: name, Formula: r[name]})
	}
	wg.Wait()

	res := make(map[string]Result, len(names))
	for i, name := range names {
		res[name] = results[i]
	}
	return res
}
