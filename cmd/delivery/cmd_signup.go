package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagName string

// delivery signup creates an account. Logging in is a separate step.
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.session.Signup(cmd.Context(), flagName, flagEmail, flagPassword, flagRole); err != nil {
			return err
		}

		fmt.Println("Signup successful! Please log in.")
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&flagName, "name", "", "display name")
}
