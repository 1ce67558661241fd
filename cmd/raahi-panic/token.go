package main

import (
	"fmt"

	"raahi/config"
	"raahi/internal/domain/entity"
	"raahi/internal/infra/auth"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var tokenFlags struct {
	roles []string
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an HS256 token from the service configuration",
	Long: `Issue a bearer token signed with auth.secret for the jwt provider.
The subject is taken from --user-id.

Examples:
  raahi-panic token --user-id op-1 --role operator
  raahi-panic token --user-id tourist-7 --name Asha`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if globalFlags.userID == "" {
			return errors.New("--user-id is required")
		}

		roles := entity.RolesFromStrings(tokenFlags.roles)
		if len(roles) != len(tokenFlags.roles) {
			return errors.Errorf("unknown role in %v", tokenFlags.roles)
		}

		cfg, err := config.New()
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		svc, err := auth.NewJWTService(cfg)
		if err != nil {
			return err
		}

		token, err := svc.IssueToken(entity.Actor{
			UserID:      globalFlags.userID,
			Email:       globalFlags.email,
			DisplayName: globalFlags.displayName,
			Roles:       roles,
		})
		if err != nil {
			return err
		}

		color.New(color.Faint).Fprintf(cmd.ErrOrStderr(), "token for %s, valid %s\n", globalFlags.userID, cfg.Auth.TokenTTL)
		fmt.Fprintln(cmd.OutOrStdout(), token)

		return nil
	},
}

func init() {
	tokenCmd.Flags().StringSliceVar(&tokenFlags.roles, "role", []string{string(entity.RoleUser)}, "roles to grant (user, operator, admin)")
}
