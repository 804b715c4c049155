package mode

import (
	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/scale"
)

const (
	n  = pitch.Natural
	b  = pitch.Flat
	bb = pitch.DoubleFlat
	s  = pitch.Sharp
)

func formula(mods ...pitch.Accidental) scale.Formula {
	var f scale.Formula
	for i, m := range mods {
		f[i] = scale.Degree(i+1, m)
	}
	return f
}

// Modes of the major scale.
var (
	Ionian     = formula(n, n, n, n, n, n, n)
	Dorian     = formula(n, n, b, n, n, n, b)
	Phrygian   = formula(n, b, b, n, n, b, b)
	Lydian     = formula(n, n, n, s, n, n, n)
	Mixolydian = formula(n, n, n, n, n, n, b)
	Aeolian    = formula(n, n, b, n, n, b, b)
	Locrian    = formula(n, b, b, n, b, b, b)
)

// Modes of harmonic minor.
var (
	AeolianHarmonic  = formula(n, n, b, n, n, b, n)
	LocrianNatural6  = formula(n, b, b, n, b, n, b)
	IonianSharp5     = formula(n, n, n, n, s, n, n)
	DorianSharp4     = formula(n, n, b, s, n, n, b)
	PhrygianDominant = formula(n, b, n, n, n, b, b)
	LydianSharp2     = formula(n, s, n, s, n, n, n)
	SuperLocrianBB7  = formula(n, b, b, b, b, b, bb)
)

// Modes of melodic minor.
var (
	MelodicMinor    = formula(n, n, b, n, n, n, n)
	DorianFlat2     = formula(n, b, b, n, n, n, b)
	LydianAugmented = formula(n, n, n, s, s, n, n)
	LydianDominant  = formula(n, n, n, s, n, n, b)
	MixolydianFlat6 = formula(n, n, n, n, n, b, b)
	LocrianSharp2   = formula(n, n, b, n, b, b, b)
	Altered         = formula(n, b, b, b, b, b, b)
)

var builtin = Registry{
	"ionian":     Ionian,
	"dorian":     Dorian,
	"phrygian":   Phrygian,
	"lydian":     Lydian,
	"mixolydian": Mixolydian,
	"aeolian":    Aeolian,
	"locrian":    Locrian,

	"aeolian-harmonic":  AeolianHarmonic,
	"locrian-natural-6": LocrianNatural6,
	"ionian-sharp-5":    IonianSharp5,
	"dorian-sharp-4":    DorianSharp4,
	"phrygian-dominant": PhrygianDominant,
	"lydian-sharp-2":    LydianSharp2,
	"super-locrian-bb7": SuperLocrianBB7,

	"melodic-minor":     MelodicMinor,
	"dorian-flat-2":     DorianFlat2,
	"lydian-augmented":  LydianAugmented,
	"lydian-dominant":   LydianDominant,
	"mixolydian-flat-6": MixolydianFlat6,
	"locrian-sharp-2":   LocrianSharp2,
	"altered":           Altered,
}

var aliases = map[string]string{
	"major":          "ionian",
	"minor":          "aeolian",
	"natural-minor":  "aeolian",
	"harmonic-minor": "aeolian-harmonic",
	"super-locrian":  "altered",
	"ultralocrian":   "super-locrian-bb7",
}
