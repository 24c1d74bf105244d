package cli

import (
	"bufio"
	"fmt"
	"strings"

	"sheet-music-backend/internal/database"
	"sheet-music-backend/internal/repository"
	"sheet-music-backend/internal/service"

	"github.com/spf13/cobra"
)

type createUserOptions struct {
	email         string
	name          string
	password      string
	passwordStdin bool
	staff         bool
	inactive      bool
}

// NewCreateUserCommand creates the createuser command, or createsuperuser when privileged is set
func NewCreateUserCommand(rootOpts *RootOptions, privileged bool) *cobra.Command {
	opts := &createUserOptions{}

	use, short := "createuser", "Create a regular user account"
	if privileged {
		use, short = "createsuperuser", "Create a staff superuser account"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

Without --password or --password-stdin the account gets an unusable password
and cannot log in until one is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateUser(cmd, rootOpts, opts, privileged)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&opts.name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.password, "password", "", "password")
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "read the password from the first line of stdin")
	if !privileged {
		cmd.Flags().BoolVar(&opts.staff, "staff", false, "mark the account as staff")
		cmd.Flags().BoolVar(&opts.inactive, "inactive", false, "create the account disabled")
	}
	_ = cmd.MarkFlagRequired("email")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

func runCreateUser(cmd *cobra.Command, rootOpts *RootOptions, opts *createUserOptions, privileged bool) error {
	password := opts.password
	if opts.passwordStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password from stdin: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	db, err := rootOpts.open()
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	users := service.NewUserService(repository.NewUserRepository(db), service.NewValidator())
	req := &service.CreateUserRequest{Email: opts.email, Name: opts.name, Password: password}

	var user *service.UserResponse
	if privileged {
		user, err = users.CreateSuperuser(req)
	} else {
		active := !opts.inactive
		req.IsStaff = &opts.staff
		req.IsActive = &active
		user, err = users.CreateUser(req)
	}
	if err != nil {
		if fields := service.FieldErrors(err); fields != nil {
			for field, msg := range fields {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
			}
		}
		return err
	}

	kind := "User"
	if user.IsSuperuser {
		kind = "Superuser"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s created successfully.\n", kind, user.Email)
	return nil
}
