package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/scaledex/interval"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/scale"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

// Quality is a chord shape written as altered degrees over the root, so the
// fifth of a diminished triad is a b5 and never a #4.
type Quality struct {
	Name   string
	Symbol string
	Tones  []scale.ScaleDegree
}

func tones(ts ...scale.ScaleDegree) []scale.ScaleDegree {
	return ts
}

var deg = scale.Degree

const (
	n  = pitch.Natural
	b  = pitch.Flat
	bb = pitch.DoubleFlat
	s  = pitch.Sharp
)

var (
	Major           = Quality{"major", "", tones(deg(1, n), deg(3, n), deg(5, n))}
	Minor           = Quality{"minor", "m", tones(deg(1, n), deg(3, b), deg(5, n))}
	Diminished      = Quality{"diminished", "dim", tones(deg(1, n), deg(3, b), deg(5, b))}
	Augmented       = Quality{"augmented", "aug", tones(deg(1, n), deg(3, n), deg(5, s))}
	Major7          = Quality{"major7", "maj7", tones(deg(1, n), deg(3, n), deg(5, n), deg(7, n))}
	Minor7          = Quality{"minor7", "m7", tones(deg(1, n), deg(3, b), deg(5, n), deg(7, b))}
	Dominant7       = Quality{"dominant7", "7", tones(deg(1, n), deg(3, n), deg(5, n), deg(7, b))}
	HalfDiminished7 = Quality{"half-diminished7", "m7b5", tones(deg(1, n), deg(3, b), deg(5, b), deg(7, b))}
	Diminished7     = Quality{"diminished7", "dim7", tones(deg(1, n), deg(3, b), deg(5, b), deg(7, bb))}
	MinorMajor7     = Quality{"minor-major7", "mMaj7", tones(deg(1, n), deg(3, b), deg(5, n), deg(7, n))}
	AugmentedMajor7 = Quality{"augmented-major7", "maj7#5", tones(deg(1, n), deg(3, n), deg(5, s), deg(7, n))}
	Suspended2      = Quality{"sus2", "sus2", tones(deg(1, n), deg(2, n), deg(5, n))}
	Suspended4      = Quality{"sus4", "sus4", tones(deg(1, n), deg(4, n), deg(5, n))}
)

var qualities = []Quality{
	Major, Minor, Diminished, Augmented,
	Major7, Minor7, Dominant7, HalfDiminished7, Diminished7, MinorMajor7, AugmentedMajor7,
	Suspended2, Suspended4,
}

func Qualities() []Quality {
	res := make([]Quality, len(qualities))
	copy(res, qualities)
	return res
}

// Lookup finds a quality by name ("minor7") or symbol ("m7").
func Lookup(name string) (Quality, error) {
	key := strings.TrimSpace(name)
	for _, q := range qualities {
		if strings.EqualFold(q.Name, key) || q.Symbol == key {
			return q, nil
		}
	}
	return Quality{}, fmt.Errorf("%w: %q", ErrUnknownQuality, name)
}

// Intervals is the chromatic ladder of the chord above its root.
func (q Quality) Intervals() ([]interval.Interval, error) {
	res := make([]interval.Interval, 0, len(q.Tones))
	for _, t := range q.Tones {
		i, err := interval.FromSemitones(t.Offset())
		if err != nil {
			return nil, fmt.Errorf("%s tone %v: %w", q.Name, t, err)
		}
		res = append(res, i)
	}
	return res, nil
}

func (q Quality) sameTones(other []scale.ScaleDegree) bool {
	if len(q.Tones) != len(other) {
		return false
	}
	for i := range q.Tones {
		if q.Tones[i] != other[i] {
			return false
		}
	}
	return true
}

func identify(ts []scale.ScaleDegree) Quality {
	for _, q := range qualities {
		if q.sameTones(ts) {
			return q
		}
	}
	var parts []string
	for _, t := range ts {
		parts = append(parts, t.String())
	}
	return Quality{Name: strings.Join(parts, " "), Symbol: "(" + strings.Join(parts, ",") + ")", Tones: ts}
}
