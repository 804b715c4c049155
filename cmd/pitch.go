package cmd

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/scaledex/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pitchCmd)
}

var pitchCmd = &cobra.Command{
	Use:   "pitch <pitch>...",
	Short: "Inspects pitches",
	Long:  `Parses each pitch and prints its spelling, pitch class and midi key.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, arg := range args {
			p, err := pitch.Parse(arg)
			if err != nil {
				printError(cmd.ErrOrStderr(), arg, err)
				failed++
				continue
			}

			key := "-"
			if k, err := p.Key(); err == nil {
				key = fmt.Sprint(k.Value())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tclass %d\tkey %s\n",
				styled(headingStyle, formatPitch(p)), p.Accidental.Name(), p.PitchClassValue(), key)
		}
		if failed > 0 {
			return fault.New(fmt.Sprintf("%d of %d pitches could not be parsed", failed, len(args)), fmsg.With("pitch"))
		}
		return nil
	},
}
