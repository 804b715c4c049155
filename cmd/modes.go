package cmd

import (
	"fmt"

	"github.com/jsphweid/scaledex/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(qualitiesCmd)
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Lists known modes",
	Long:  `Lists known modes and their formulas, including any loaded with --modes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		modes, err := loadModes()
		if err != nil {
			return err
		}
		for _, name := range modes.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, modes[name])
		}
		return nil
	},
}

var qualitiesCmd = &cobra.Command{
	Use:   "qualities",
	Short: "Lists chord qualities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, q := range chord.Qualities() {
			var tones []string
			for _, t := range q.Tones {
				tones = append(tones, t.String())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %-7s %v\n", q.Name, q.Symbol, tones)
		}
	},
}
