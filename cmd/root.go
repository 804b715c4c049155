package cmd

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/mode"
	"github.com/spf13/cobra"
)

var (
	modesPath string
	unicode   bool
	plain     bool
)

var rootCmd = &cobra.Command{
	Use:           "scaledex",
	Short:         "Spells scales, modes and chords",
	Long:          `scaledex spells scales and chords with the right letter names, so C dorian has an Eb and not a D#.`,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modesPath, "modes", "", "YAML file of extra modes (default $SCALEDEX_MODES_PATH)")
	rootCmd.PersistentFlags().BoolVar(&unicode, "unicode", false, "print accidentals as ♭ ♯ 𝄫 𝄪")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable styling")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadModes returns the built-in modes plus any from --modes or the environment.
func loadModes() (mode.Registry, error) {
	r := mode.Default()
	path := modesPath
	if path == "" {
		path = constants.GetModesPath()
	}
	if path == "" {
		return r, nil
	}
	if err := r.LoadFile(path); err != nil {
		return nil, fault.Wrap(err, fmsg.WithDesc("load modes", "Could not load modes from "+path))
	}
	return r, nil
}
