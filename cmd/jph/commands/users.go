package commands

import (
	"strconv"

	"github.com/fivetwenty-io/jph/internal/pages"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/spf13/cobra"
)

var usersResource = resource[jph.User]{
	page:   pages.Users,
	header: []string{"ID", "Name", "Username", "Email", "Company"},
	row: func(user jph.User) []string {
		return []string{
			strconv.Itoa(user.ID),
			user.Name,
			user.Username,
			user.Email,
			user.Company.Name,
		}
	},
}

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user", "u"},
		Short:   "Browse the user directory",
		Long:    "List and search community members fetched from the JSONPlaceholder API",
	}

	cmd.AddCommand(usersResource.newListCommand())
	cmd.AddCommand(usersResource.newBrowseCommand())

	return cmd
}
