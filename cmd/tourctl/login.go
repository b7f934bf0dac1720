package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(false)
			if err != nil {
				return err
			}
			defer e.close()

			token, userID, err := e.api.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			// printed as shell exports so `eval $(tourctl login ...)` works
			fmt.Printf("export TOURDESK_TOKEN=%q\n", token)
			fmt.Printf("export TOURDESK_USER_ID=%q\n", userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
