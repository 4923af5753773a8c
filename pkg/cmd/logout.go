package cmd

import (
	"github.com/spf13/cobra"

	"go.xrstf.de/taiga_gantt/pkg/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sessionPath()
		if err != nil {
			return err
		}

		if err := session.Clear(path); err != nil {
			return err
		}

		log.Info("Logged out.")

		return nil
	},
}
