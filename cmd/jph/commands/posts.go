package commands

import (
	"strconv"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/internal/pages"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/spf13/cobra"
)

var postsResource = resource[jph.Post]{
	page:   pages.Posts,
	header: []string{"ID", "User ID", "Title", "Body"},
	row: func(post jph.Post) []string {
		return []string{
			strconv.Itoa(post.ID),
			strconv.Itoa(post.UserID),
			truncate(post.Title, constants.DefaultTruncateLength),
			truncate(post.Body, constants.DefaultTruncateLength),
		}
	},
}

// NewPostsCommand creates the posts command group.
func NewPostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"post", "p"},
		Short:   "Browse blog posts",
		Long:    "List and search blog posts fetched from the JSONPlaceholder API",
	}

	cmd.AddCommand(postsResource.newListCommand())
	cmd.AddCommand(postsResource.newBrowseCommand())

	return cmd
}
