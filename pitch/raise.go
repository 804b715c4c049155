package pitch

import (
	"errors"
	"fmt"

	"github.com/jsphweid/scaledex/interval"
	"github.com/jsphweid/scaledex/util"
)

var (
	ErrOctaveOverflow  = errors.New("octave out of range")
	ErrNegativeLetters = errors.New("letter steps must not be negative")
)

// InvalidSpellingError means the target letter cannot carry the requested
// pitch with an accidental between double-flat and double-sharp.
type InvalidSpellingError struct {
	From       Pitch
	Target     PitchClass
	HalfSteps  int
	Difference int
}

func (e *InvalidSpellingError) Error() string {
	return fmt.Sprintf("cannot spell %v raised %+d half steps on %v: needs %+d half steps of accidental",
		e.From, e.HalfSteps, e.Target, e.Difference)
}

// Raise moves p up by halfSteps and spells the result on the next letter name,
// so C raised by one half step is Db rather than C#.
func (p Pitch) Raise(halfSteps int) (Pitch, error) {
	return p.Spell(1, halfSteps)
}

// Spell advances the letter by letterSteps and the sounding pitch by halfSteps.
// The octave follows the letter: it increments each time the letter passes B to C.
func (p Pitch) Spell(letterSteps, halfSteps int) (Pitch, error) {
	if letterSteps < 0 {
		return p, fmt.Errorf("%w: %d", ErrNegativeLetters, letterSteps)
	}

	target := p.Class.Advance(letterSteps)
	octaves := (int(p.Class) + letterSteps) / numClasses

	raised := p.Chromatic() + halfSteps
	diff := raised - (target.Semitones() + 12*octaves)

	accidental, err := AccidentalFromSemitones(diff)
	if err != nil {
		return p, &InvalidSpellingError{
			From:       p,
			Target:     target,
			HalfSteps:  halfSteps,
			Difference: diff,
		}
	}

	octave := int(p.Octave) + octaves
	if octave > 255 {
		return p, fmt.Errorf("%w: %v raised past octave 255", ErrOctaveOverflow, p)
	}

	return New(target, accidental, uint8(octave)), nil
}

var sharpSpellings = [12]Pitch{
	{Class: C}, {Class: C, Accidental: Sharp},
	{Class: D}, {Class: D, Accidental: Sharp},
	{Class: E},
	{Class: F}, {Class: F, Accidental: Sharp},
	{Class: G}, {Class: G, Accidental: Sharp},
	{Class: A}, {Class: A, Accidental: Sharp},
	{Class: B},
}

// Transpose moves p by i and picks the sharp spelling of the resulting pitch
// class, ignoring letter order.
//
// Deprecated: the result is only enharmonically right. Use Raise or Spell.
func (p Pitch) Transpose(i interval.Interval) Pitch {
	abs := int(p.Octave)*12 + p.Chromatic() + i.Semitones()
	res := sharpSpellings[util.Mod(abs, 12)]

	octave := (abs - util.Mod(abs, 12)) / 12
	if octave < 0 {
		octave = 0
	} else if octave > 255 {
		octave = 255
	}
	res.Octave = uint8(octave)
	return res
}
