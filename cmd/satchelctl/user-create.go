package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/satchelhq/satchel/pkg/db"
	"github.com/satchelhq/satchel/pkg/server/store"
	storegorm "github.com/satchelhq/satchel/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create [username]",
	Short: "Create a user account",
	Long: `Create a user account.

The password is read from the SATCHEL_USER_PASSWORD environment variable
if set, otherwise it is prompted for on the terminal.

Example:
  satchelctl user create alice --first-name Alice --last-name Smith`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "error: username is required")
			os.Exit(1)
		}
		username := args[0]
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		password, err := readPassword()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read password: %v\n", err)
			os.Exit(1)
		}

		userID, err := createUser(firstName, lastName, username, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s'\n", username)
		fmt.Printf("User id: %d\n", userID)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().String("first-name", "", "user first name")
	userCreateCmd.Flags().String("last-name", "", "user last name")
}

func readPassword() (string, error) {
	if password, ok := os.LookupEnv("SATCHEL_USER_PASSWORD"); ok {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func createUser(firstName, lastName, username, password string) (int64, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return 0, err
	}

	users := storegorm.NewUsersStore(database)
	userID, err := users.CreateUser(context.Background(), firstName, lastName, username, password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return 0, fmt.Errorf("username '%s' already taken", username)
		}
		return 0, err
	}
	return userID, nil
}
