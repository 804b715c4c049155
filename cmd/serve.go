package cmd

import (
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/server"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default $SCALEDEX_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves scales over HTTP",
	Long:  `Serves pitches, scales, modes and chords as JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		modes, err := loadModes()
		if err != nil {
			return err
		}
		if addr == "" {
			addr = constants.GetAddr()
		}
		return server.New(modes).ListenAndServe(addr, constants.GetAllowedOrigins())
	},
}
