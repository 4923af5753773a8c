package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"go.xrstf.de/taiga_gantt/pkg/session"
)

var loginUsername string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log into Taiga and store the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		username := loginUsername
		if username == "" {
			fmt.Print("Username: ")

			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}

			username = strings.TrimSpace(line)
		}

		if username == "" {
			return fmt.Errorf("username is required")
		}

		fmt.Print("Password: ")

		password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()

		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		// login happens anonymously, the token only exists afterwards
		c, err := newAPIClient(ctx, "")
		if err != nil {
			return err
		}

		creds, err := c.Login(ctx, username, string(password))
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		path, err := sessionPath()
		if err != nil {
			return err
		}

		s := &session.Session{
			Token:     creds.AuthToken,
			UserID:    creds.ID,
			Username:  creds.Username,
			CreatedAt: time.Now().UTC(),
		}

		if err := s.Save(path); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}

		log.Infof("Logged in as %s.", creds.Username)

		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username or email (prompted when omitted)")
}
