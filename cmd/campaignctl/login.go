package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginPhone   string
	loginIDToken string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with a verified phone number",
	Long: `Exchanges a phone number and its verification token for an API
session token, and stores it in the config file for later commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		resp, err := c.VerifyPhone(cmd.Context(), loginPhone, loginIDToken)
		if err != nil {
			return err
		}

		cfg.Token = resp.Token
		if err := saveConfig(cfgPath, cfg); err != nil {
			return err
		}

		name := resp.User.Name
		if name == "" {
			name = resp.User.PhoneNumber
		}
		fmt.Printf("Logged in as %s\n", name)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		user, err := c.Me(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", user.Name, user.PhoneNumber)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "10-digit phone number")
	loginCmd.Flags().StringVar(&loginIDToken, "id-token", "", "verification token for the phone number")
	_ = loginCmd.MarkFlagRequired("phone")
	_ = loginCmd.MarkFlagRequired("id-token")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(whoamiCmd)
}
