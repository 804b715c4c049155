package scale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/util"
)

var ErrInvalidFormula = errors.New("invalid scale formula")

const NumDegrees = 7

// natural half step offsets from the tonic of degrees 1..7
var naturalOffsets = [NumDegrees]int{0, 2, 4, 5, 7, 9, 11}

// ScaleDegree is a diatonic degree (1..7) and how it is altered from major.
type ScaleDegree struct {
	Degree   int
	Modifier pitch.Accidental
}

func Degree(degree int, modifier pitch.Accidental) ScaleDegree {
	return ScaleDegree{Degree: degree, Modifier: modifier}
}

func (d ScaleDegree) Valid() bool {
	return d.Degree >= 1 && d.Degree <= NumDegrees && d.Modifier.Valid()
}

// Offset is the half step distance above the tonic.
func (d ScaleDegree) Offset() int {
	return naturalOffsets[util.Mod(d.Degree-1, NumDegrees)] + d.Modifier.Semitones()
}

func (d ScaleDegree) String() string {
	return degreePrefixes[d.Modifier] + strconv.Itoa(d.Degree)
}

var degreePrefixes = map[pitch.Accidental]string{
	pitch.DoubleFlat:  "bb",
	pitch.Flat:        "b",
	pitch.Natural:     "",
	pitch.Sharp:       "#",
	pitch.DoubleSharp: "##",
}

// longest prefixes first
var degreeModifiers = []struct {
	prefix string
	mod    pitch.Accidental
}{
	{"bb", pitch.DoubleFlat},
	{"𝄫", pitch.DoubleFlat},
	{"##", pitch.DoubleSharp},
	{"𝄪", pitch.DoubleSharp},
	{"x", pitch.DoubleSharp},
	{"b", pitch.Flat},
	{"♭", pitch.Flat},
	{"#", pitch.Sharp},
	{"♯", pitch.Sharp},
	{"n", pitch.Natural},
	{"♮", pitch.Natural},
}

// ParseDegree reads degrees written like "5", "b3", "#4" or "bb7".
func ParseDegree(s string) (ScaleDegree, error) {
	d := ScaleDegree{Modifier: pitch.Natural}
	rest := s
	for _, m := range degreeModifiers {
		if strings.HasPrefix(rest, m.prefix) {
			d.Modifier = m.mod
			rest = strings.TrimPrefix(rest, m.prefix)
			break
		}
	}

	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > NumDegrees {
		return d, fmt.Errorf("%w: bad degree %q", ErrInvalidFormula, s)
	}
	d.Degree = n
	return d, nil
}

// Formula lists the seven degrees of a mode in order.
type Formula [NumDegrees]ScaleDegree

func ParseFormula(s string) (Formula, error) {
	var f Formula
	fields := strings.Fields(s)
	if len(fields) != NumDegrees {
		return f, fmt.Errorf("%w: want %d degrees, got %d in %q", ErrInvalidFormula, NumDegrees, len(fields), s)
	}
	for i, field := range fields {
		d, err := ParseDegree(field)
		if err != nil {
			return f, err
		}
		f[i] = d
	}
	return f, f.Validate()
}

// Validate checks that degree i sits at position i-1 and that the tonic is unaltered.
func (f Formula) Validate() error {
	for i, d := range f {
		if !d.Valid() {
			return fmt.Errorf("%w: degree %v at position %d", ErrInvalidFormula, d, i+1)
		}
		if d.Degree != i+1 {
			return fmt.Errorf("%w: degree %v found at position %d", ErrInvalidFormula, d, i+1)
		}
	}
	if f[0].Modifier != pitch.Natural {
		return fmt.Errorf("%w: tonic cannot be altered (%v)", ErrInvalidFormula, f[0])
	}
	return nil
}

func (f Formula) String() string {
	parts := make([]string, len(f))
	for i, d := range f {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
