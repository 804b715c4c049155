package interval

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("interval out of range")

// Interval is a chromatic distance in half steps, from a unison up to an octave.
type Interval uint8

const (
	Unison Interval = iota
	Minor2nd
	Major2nd
	Minor3rd
	Major3rd
	Perfect4th
	Tritone
	Perfect5th
	Minor6th
	Major6th
	Minor7th
	Major7th
	Octave
)

var names = [...]string{
	"Unison",
	"Minor 2nd",
	"Major 2nd",
	"Minor 3rd",
	"Major 3rd",
	"Perfect 4th",
	"Tritone",
	"Perfect 5th",
	"Minor 6th",
	"Major 6th",
	"Minor 7th",
	"Major 7th",
	"Octave",
}

var shortNames = [...]string{"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7", "P8"}

func FromSemitones(n int) (Interval, error) {
	if n < int(Unison) || n > int(Octave) {
		return Unison, fmt.Errorf("%w: %d half steps", ErrOutOfRange, n)
	}
	return Interval(n), nil
}

func All() []Interval {
	res := make([]Interval, 0, len(names))
	for i := Unison; i <= Octave; i++ {
		res = append(res, i)
	}
	return res
}

func (i Interval) Semitones() int {
	return int(i)
}

func (i Interval) Valid() bool {
	return i <= Octave
}

func (i Interval) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Interval(%d)", uint8(i))
	}
	return names[i]
}

func (i Interval) Short() string {
	if !i.Valid() {
		return "?"
	}
	return shortNames[i]
}
