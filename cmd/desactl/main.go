package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"godesa/internal/auth"
	"godesa/internal/config"
	"godesa/internal/dbmysql"
	"godesa/internal/di"
)

// desactl is the operator tool for tasks that have no HTTP surface,
// mainly granting the admin role to an account.
func main() {
	root := &cobra.Command{
		Use:   "desactl",
		Short: "Administrative tool for the village website backend",
	}

	root.AddCommand(promoteCmd(), roleCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func promoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <email>",
		Short: "Grant the admin role to the account with the given email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := authService()
			if err != nil {
				return err
			}
			email := args[0]
			if err := svc.PromoteAdmin(context.Background(), email); err != nil {
				return fmt.Errorf("promote %s: %w", email, err)
			}
			fmt.Printf("%s is now admin\n", email)
			return nil
		},
	}
}

func roleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role <email>",
		Short: "Show the role of the account with the given email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := authService()
			if err != nil {
				return err
			}
			user, err := svc.GetUserByEmail(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("lookup %s: %w", args[0], err)
			}
			role, err := svc.Role(context.Background(), user.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", user.Email, role)
			return nil
		},
	}
}

func authService() (auth.Service, error) {
	godotenv.Load()
	cfg := config.Load()

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return di.InitAuthService(db, zap.NewNop()), nil
}
