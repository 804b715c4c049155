package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/jsphweid/scaledex/util"
	"gitlab.com/gomidi/midi/v2"
)

var ErrKeyOutOfRange = errors.New("pitch outside the midi key range")

// Pitch is one spelled pitch: a letter, an accidental and an octave.
type Pitch struct {
	Class      PitchClass
	Accidental Accidental
	Octave     uint8
}

type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse pitch %q: %s", e.Input, e.Reason)
}

func New(class PitchClass, accidental Accidental, octave uint8) Pitch {
	return Pitch{Class: class, Accidental: accidental, Octave: octave}
}

// Parse reads the compact form <letter><accidental><octave>, e.g. "C4", "D#5", "Gx6".
func Parse(s string) (Pitch, error) {
	var p Pitch
	rest := s
	if rest == "" {
		return p, &ParseError{Input: s, Reason: "empty input"}
	}

	r, size := utf8.DecodeRuneInString(rest)
	class, err := ClassFromLetter(r)
	if err != nil {
		return p, &ParseError{Input: s, Reason: fmt.Sprintf("unknown letter %q", r)}
	}
	rest = rest[size:]

	accidental := Natural
	r, size = utf8.DecodeRuneInString(rest)
	if a, ok := accidentalGlyphs[r]; ok {
		accidental = a
		rest = rest[size:]
	}

	if rest == "" {
		return p, &ParseError{Input: s, Reason: "missing octave"}
	}
	octave, err := strconv.ParseUint(rest, 10, 8)
	if err != nil {
		return p, &ParseError{Input: s, Reason: fmt.Sprintf("invalid octave %q", rest)}
	}

	return New(class, accidental, uint8(octave)), nil
}

func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pitch) Valid() bool {
	return p.Class.Valid() && p.Accidental.Valid()
}

// Chromatic is the letter value plus the accidental, not reduced mod 12,
// so Cb is -1 and B# is 12.
func (p Pitch) Chromatic() int {
	return p.Class.Semitones() + p.Accidental.Semitones()
}

func (p Pitch) PitchClassValue() int {
	return util.Mod(p.Chromatic(), 12)
}

// SameTone reports enharmonic equivalence, ignoring octave.
func (p Pitch) SameTone(other Pitch) bool {
	return p.PitchClassValue() == other.PitchClassValue()
}

func (p Pitch) SamePitch(other Pitch) bool {
	return p.SameTone(other) && p.Octave == other.Octave
}

// Key is the midi key number, with C4 at 60.
func (p Pitch) Key() (midi.Note, error) {
	abs := (int(p.Octave)+1)*12 + p.Chromatic()
	if abs < 0 || abs > 127 {
		return 0, fmt.Errorf("%w: %v is key %d", ErrKeyOutOfRange, p, abs)
	}
	return midi.Note(uint8(abs)), nil
}

// Name is the letter and accidental without the octave.
func (p Pitch) Name() string {
	return p.Class.String() + p.Accidental.String()
}

func (p Pitch) String() string {
	return p.Name() + strconv.Itoa(int(p.Octave))
}

// Symbol renders with musical glyphs (♭ ♯ 𝄫 𝄪); Parse accepts it back.
func (p Pitch) Symbol() string {
	return p.Class.String() + p.Accidental.Symbol() + strconv.Itoa(int(p.Octave))
}

func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pitch) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
