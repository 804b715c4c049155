package pitch

import (
	"errors"
	"fmt"

	"github.com/jsphweid/scaledex/util"
)

var (
	ErrInvalidClass      = errors.New("invalid pitch class")
	ErrInvalidAccidental = errors.New("invalid accidental")
)

// PitchClass is one of the seven natural letter names, ordered C to B.
type PitchClass uint8

const (
	C PitchClass = iota
	D
	E
	F
	G
	A
	B
)

const numClasses = 7

var classSemitones = [numClasses]int{0, 2, 4, 5, 7, 9, 11}

var classLetters = [numClasses]rune{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

func ClassFromSemitones(v int) (PitchClass, error) {
	for i, s := range classSemitones {
		if s == v {
			return PitchClass(i), nil
		}
	}
	return C, fmt.Errorf("%w: no letter sits %d half steps above C", ErrInvalidClass, v)
}

func ClassFromLetter(r rune) (PitchClass, error) {
	for i, l := range classLetters {
		if l == r {
			return PitchClass(i), nil
		}
	}
	return C, fmt.Errorf("%w: %q", ErrInvalidClass, r)
}

func (c PitchClass) Valid() bool {
	return c < numClasses
}

// Semitones is the fixed chromatic value of the natural letter relative to C.
func (c PitchClass) Semitones() int {
	return classSemitones[c%numClasses]
}

func (c PitchClass) Next() PitchClass {
	return c.Advance(1)
}

func (c PitchClass) Advance(steps int) PitchClass {
	return PitchClass(util.Mod(int(c%numClasses)+steps, numClasses))
}

func (c PitchClass) String() string {
	if !c.Valid() {
		return fmt.Sprintf("PitchClass(%d)", uint8(c))
	}
	return string(classLetters[c])
}

// Accidental is a signed half step modifier.
type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

func AccidentalFromSemitones(v int) (Accidental, error) {
	if v < int(DoubleFlat) || v > int(DoubleSharp) {
		return Natural, fmt.Errorf("%w: %+d half steps", ErrInvalidAccidental, v)
	}
	return Accidental(v), nil
}

func (a Accidental) Valid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

func (a Accidental) Semitones() int {
	return int(a)
}

// String renders the text glyph that Parse accepts back.
func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "𝄫"
	case Flat:
		return "b"
	case Natural:
		return ""
	case Sharp:
		return "#"
	case DoubleSharp:
		return "x"
	}
	return fmt.Sprintf("Accidental(%d)", int8(a))
}

func (a Accidental) Symbol() string {
	switch a {
	case DoubleFlat:
		return "𝄫"
	case Flat:
		return "♭"
	case Natural:
		return ""
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "𝄪"
	}
	return a.String()
}

func (a Accidental) Name() string {
	switch a {
	case DoubleFlat:
		return "double-flat"
	case Flat:
		return "flat"
	case Natural:
		return "natural"
	case Sharp:
		return "sharp"
	case DoubleSharp:
		return "double-sharp"
	}
	return a.String()
}

var accidentalGlyphs = map[rune]Accidental{
	'𝄫': DoubleFlat,
	'b': Flat,
	'♭': Flat,
	'n': Natural,
	'♮': Natural,
	'#': Sharp,
	'♯': Sharp,
	'x': DoubleSharp,
	'𝄪': DoubleSharp,
}
