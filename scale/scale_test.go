package scale

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/scaledex/pitch"
	"github.com/stretchr/testify/assert"
)

func mustFormula(s string) Formula {
	f, err := ParseFormula(s)
	if err != nil {
		panic(err)
	}
	return f
}

var (
	ionian     = mustFormula("1 2 3 4 5 6 7")
	dorian     = mustFormula("1 2 b3 4 5 6 b7")
	phrygian   = mustFormula("1 b2 b3 4 5 b6 b7")
	lydian     = mustFormula("1 2 3 #4 5 6 7")
	mixolydian = mustFormula("1 2 3 4 5 6 b7")
	aeolian    = mustFormula("1 2 b3 4 5 b6 b7")
	locrian    = mustFormula("1 b2 b3 4 b5 b6 b7")

	churchModes = []Formula{ionian, dorian, phrygian, lydian, mixolydian, aeolian, locrian}
)

func names(ps []pitch.Pitch) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = p.Name()
	}
	return res
}

func TestBuildAIonian(t *testing.T) {
	pitches, err := Build(pitch.MustParse("A1"), ionian)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"A", "B", "C#", "D", "E", "F#", "G#"}, names(pitches))

	var octaves []uint8
	for _, p := range pitches {
		octaves = append(octaves, p.Octave)
	}
	assert.Equal([]uint8{1, 1, 2, 2, 2, 2, 2}, octaves)
}

func TestBuildCLocrian(t *testing.T) {
	pitches, err := Build(pitch.MustParse("C1"), locrian)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"C", "Db", "Eb", "F", "Gb", "Ab", "Bb"}, names(pitches))

	seen := make(map[pitch.PitchClass]bool)
	for _, p := range pitches {
		seen[p.Class] = true
	}
	assert.Len(seen, 7)
}

func TestBuildKnownScales(t *testing.T) {
	cases := []struct {
		root    string
		formula Formula
		want    []string
	}{
		{"C4", dorian, []string{"C", "D", "Eb", "F", "G", "A", "Bb"}},
		{"E4", phrygian, []string{"E", "F", "G", "A", "B", "C", "D"}},
		{"F4", lydian, []string{"F", "G", "A", "B", "C", "D", "E"}},
		{"F4", locrian, []string{"F", "Gb", "Ab", "Bb", "Cb", "Db", "Eb"}},
		{"F#4", ionian, []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}},
		{"C#4", ionian, []string{"C#", "D#", "E#", "F#", "G#", "A#", "B#"}},
		{"A#4", ionian, []string{"A#", "B#", "Cx", "D#", "E#", "Fx", "Gx"}},
		{"Cb4", ionian, []string{"Cb", "Db", "Eb", "Fb", "Gb", "Ab", "Bb"}},
		{"Gb4", locrian, []string{"Gb", "A𝄫", "B𝄫", "Cb", "D𝄫", "E𝄫", "Fb"}},
		{"C4", mustFormula("1 b2 b3 b4 b5 b6 bb7"), []string{"C", "Db", "Eb", "Fb", "Gb", "Ab", "B𝄫"}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s %v", c.root, c.formula), func(t *testing.T) {
			pitches, err := Build(pitch.MustParse(c.root), c.formula)

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.want, names(pitches))
		})
	}
}

func TestBuildProperties(t *testing.T) {
	for class := pitch.C; class <= pitch.B; class++ {
		for _, a := range []pitch.Accidental{pitch.Flat, pitch.Natural, pitch.Sharp} {
			root := pitch.New(class, a, 3)
			for _, f := range churchModes {
				pitches, err := Build(root, f)
				if !assert.NoError(t, err, "%v %v", root, f) {
					continue
				}

				assert.Len(t, pitches, NumDegrees)
				assert.Equal(t, root, pitches[0])
				for i, p := range pitches {
					assert.Equal(t, class.Advance(i), p.Class, "%v %v degree %d", root, f, i+1)
					assert.Equal(t, (root.Chromatic()+f[i].Offset()+24)%12, p.PitchClassValue(), "%v %v degree %d", root, f, i+1)
				}
			}
		}
	}
}

func TestBuildReportsDegree(t *testing.T) {
	root := pitch.MustParse("Cx4")
	_, err := Build(root, mustFormula("1 2 #3 4 5 6 7"))

	var de *DegreeError
	var se *pitch.InvalidSpellingError
	assert := assert.New(t)
	assert.True(errors.As(err, &de))
	assert.Equal(3, de.Degree)
	assert.True(errors.As(err, &se))
	assert.Equal(pitch.E, se.Target)
	assert.Equal(3, se.Difference)
	assert.Contains(err.Error(), "degree 3")
}

func TestBuildRejectsBadInput(t *testing.T) {
	bad := ionian
	bad[2], bad[3] = bad[3], bad[2]
	_, err := Build(pitch.MustParse("C4"), bad)
	assert.True(t, errors.Is(err, ErrInvalidFormula))

	_, err = Build(pitch.Pitch{Class: pitch.C, Accidental: 3}, ionian)
	assert.True(t, errors.Is(err, ErrInvalidFormula))
}

func TestParseFormula(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Degree(3, pitch.Flat), dorian[2])
	assert.Equal("1 2 b3 4 5 6 b7", dorian.String())
	assert.Equal(mustFormula("1 b2 b3 bb4 b5 b6 bb7"), mustFormula("1 ♭2 b3 𝄫4 b5 b6 bb7"))

	f, err := ParseFormula("1 2 3 ##4 5 6 7")
	assert.NoError(err)
	assert.Equal(pitch.DoubleSharp, f[3].Modifier)

	for _, s := range []string{
		"1 2 3 4 5 6",
		"1 2 3 4 5 6 7 8",
		"1 3 2 4 5 6 7",
		"#1 2 3 4 5 6 7",
		"1 2 3 4 5 6 b8",
		"1 2 3 4 5 6 q7",
	} {
		_, err := ParseFormula(s)
		assert.True(errors.Is(err, ErrInvalidFormula), "%q", s)
	}
}

func TestScaleString(t *testing.T) {
	s, err := New("ionian", pitch.MustParse("A1"), ionian)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("A1 ionian: A1 B1 C#2 D2 E2 F#2 G#2", s.String())
	assert.Equal("A1 ionian: A1 B1 C♯2 D2 E2 F♯2 G♯2", s.Symbol())
	assert.Equal(pitch.MustParse("E2"), s.Pitch(5))
	assert.Equal(pitch.MustParse("A1"), s.Pitch(8))
}

func TestNewWrapsError(t *testing.T) {
	_, err := New("weird", pitch.MustParse("Cx4"), mustFormula("1 2 #3 4 5 6 7"))

	var de *DegreeError
	assert.True(t, errors.As(err, &de))
	assert.Contains(t, err.Error(), "Cx4 weird")
}
