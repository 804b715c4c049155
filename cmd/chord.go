package cmd

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> [quality]",
	Short: "Spells a chord",
	Long: `Spells a chord from a root and a quality name or symbol (m7, dim7, sus4...).
The quality defaults to major.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := pitch.Parse(args[0])
		if err != nil {
			return fault.Wrap(err, fmsg.With("bad root"))
		}
		q := chord.Major
		if len(args) == 2 {
			if q, err = chord.Lookup(args[1]); err != nil {
				return fault.Wrap(err, fmsg.With("bad quality"))
			}
		}
		c, err := chord.Build(root, q)
		if err != nil {
			return fault.Wrap(err, fmsg.With("cannot spell chord"))
		}
		printChord(cmd.OutOrStdout(), c)
		return nil
	},
}
