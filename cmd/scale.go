package cmd

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/jsphweid/scaledex/scale"
	"github.com/spf13/cobra"
)

var (
	allModes  bool
	chordSize int
)

func init() {
	scaleCmd.Flags().BoolVar(&allModes, "all", false, "spell every known mode on the root")
	scaleCmd.Flags().IntVar(&chordSize, "chords", 0, "also stack diatonic chords of this many tones (3 for triads, 4 for sevenths)")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> [mode]",
	Short: "Spells a scale",
	Long: `Spells a scale from a root pitch such as C4, F#3 or Bb2 and a mode name.
The mode defaults to ionian.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := pitch.Parse(args[0])
		if err != nil {
			return fault.Wrap(err, fmsg.With("bad root"))
		}
		modes, err := loadModes()
		if err != nil {
			return err
		}

		if allModes {
			results := modes.BuildAll(root)
			for _, name := range modes.Names() {
				res := results[name]
				if res.Err != nil {
					printError(cmd.ErrOrStderr(), name, res.Err)
					continue
				}
				printScale(cmd.OutOrStdout(), res.Scale)
			}
			return nil
		}

		name := constants.DefaultMode
		if len(args) == 2 {
			name = args[1]
		}
		m, err := modes.Lookup(name)
		if err != nil {
			return fault.Wrap(err, fmsg.With("bad mode"))
		}
		s, err := m.Build(root)
		if err != nil {
			return fault.Wrap(err, fmsg.With("cannot spell scale"))
		}
		printScale(cmd.OutOrStdout(), s)

		if chordSize > 0 {
			return printDiatonic(cmd, s)
		}
		return nil
	},
}

func printDiatonic(cmd *cobra.Command, s scale.Scale) error {
	for degree := 1; degree <= len(s.Pitches); degree++ {
		c, err := chord.Diatonic(s, degree, chordSize)
		if err != nil {
			return fault.Wrap(err, fmsg.With(fmt.Sprintf("cannot stack chord on degree %d", degree)))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s ", styled(dimStyle, fmt.Sprintf("%d.", degree)))
		printChord(cmd.OutOrStdout(), c)
	}
	return nil
}
