package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/util"
)

// DegreeError reports which degree of a formula could not be spelled.
type DegreeError struct {
	Degree int
	Err    error
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("degree %d: %v", e.Degree, e.Err)
}

func (e *DegreeError) Unwrap() error {
	return e.Err
}

// Build spells one pitch per degree, each on the letter after the previous
// one. Degree 1 is the root itself.
func Build(root pitch.Pitch, f Formula) ([]pitch.Pitch, error) {
	if !root.Valid() {
		return nil, fmt.Errorf("%w: root %v", ErrInvalidFormula, root)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	res := make([]pitch.Pitch, 0, NumDegrees)
	res = append(res, root)
	prev := root
	for i := 1; i < NumDegrees; i++ {
		// the previous degree's alteration counts too
		halfSteps := f[i].Offset() - f[i-1].Offset()
		next, err := prev.Raise(halfSteps)
		if err != nil {
			return nil, &DegreeError{Degree: f[i].Degree, Err: err}
		}
		res = append(res, next)
		prev = next
	}
	return res, nil
}

type Scale struct {
	Name    string
	Root    pitch.Pitch
	Formula Formula
	Pitches []pitch.Pitch
}

func New(name string, root pitch.Pitch, f Formula) (Scale, error) {
	pitches, err := Build(root, f)
	if err != nil {
		return Scale{}, fmt.Errorf("%v %s: %w", root, name, err)
	}
	return Scale{Name: name, Root: root, Formula: f, Pitches: pitches}, nil
}

// Pitch returns the pitch of a 1-based degree.
func (s Scale) Pitch(degree int) pitch.Pitch {
	return s.Pitches[util.Mod(degree-1, len(s.Pitches))]
}

func (s Scale) String() string {
	return s.render(pitch.Pitch.String)
}

func (s Scale) Symbol() string {
	return s.render(pitch.Pitch.Symbol)
}

func (s Scale) render(format func(pitch.Pitch) string) string {
	names := make([]string, len(s.Pitches))
	for i, p := range s.Pitches {
		names[i] = format(p)
	}
	return fmt.Sprintf("%s %s: %s", format(s.Root), s.Name, strings.Join(names, " "))
}
