package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/scale"
	"gitlab.com/gomidi/midi/v2"
)

type Chord struct {
	Root    pitch.Pitch
	Quality Quality
	Pitches []pitch.Pitch
}

// Build spells each tone of q by letter distance from root.
func Build(root pitch.Pitch, q Quality) (Chord, error) {
	c := Chord{Root: root, Quality: q}
	for _, t := range q.Tones {
		p, err := root.Spell(t.Degree-1, t.Offset())
		if err != nil {
			return Chord{}, fmt.Errorf("%v%s tone %v: %w", root, q.Symbol, t, err)
		}
		c.Pitches = append(c.Pitches, p)
	}
	return c, nil
}

// Diatonic stacks thirds on a degree of s, taking size tones (3 for a triad,
// 4 for a seventh chord).
func Diatonic(s scale.Scale, degree, size int) (Chord, error) {
	if degree < 1 || degree > len(s.Pitches) {
		return Chord{}, fmt.Errorf("degree %d outside %s", degree, s.Name)
	}
	if size < 1 || size > scale.NumDegrees {
		return Chord{}, fmt.Errorf("cannot stack %d tones", size)
	}

	root := s.Pitch(degree)
	c := Chord{Root: root}
	var ts []scale.ScaleDegree
	for i := 0; i < size; i++ {
		steps := 2 * i
		p := s.Pitch(degree + steps)
		// the scale spans a single octave, so tones past its top go up
		p.Octave += uint8((degree - 1 + steps) / len(s.Pitches))
		c.Pitches = append(c.Pitches, p)

		tone := scale.Degree(steps%scale.NumDegrees+1, pitch.Natural)
		natural := tone.Offset() + 12*(steps/scale.NumDegrees)
		mod, err := pitch.AccidentalFromSemitones(absolute(p) - absolute(root) - natural)
		if err != nil {
			return Chord{}, fmt.Errorf("degree %d of %s: %w", degree, s.Name, err)
		}
		tone.Modifier = mod
		ts = append(ts, tone)
	}
	c.Quality = identify(ts)
	return c, nil
}

func absolute(p pitch.Pitch) int {
	return int(p.Octave)*12 + p.Chromatic()
}

func (c Chord) Name() string {
	return c.Root.Name() + c.Quality.Symbol
}

func (c Chord) String() string {
	names := make([]string, len(c.Pitches))
	for i, p := range c.Pitches {
		names[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", c.Name(), strings.Join(names, " "))
}

func (c Chord) Keys() ([]midi.Note, error) {
	res := make([]midi.Note, 0, len(c.Pitches))
	for _, p := range c.Pitches {
		k, err := p.Key()
		if err != nil {
			return nil, err
		}
		res = append(res, k)
	}
	return res, nil
}
