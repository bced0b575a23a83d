package commands

import (
	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/internal/web"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var (
		postsLimit int
		usersLimit int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the posts and users pages over HTTP",
		Long: `Start an HTML server with the posts page at / and the user directory at /users.

Every request fetches its collection once; the search box filters the result
with the q query parameter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if postsLimit < 0 || usersLimit < 0 {
				return constants.ErrNegativeLimit
			}

			logger := newLogger(cmd.ErrOrStderr(), zap.InfoLevel)
			defer func() { _ = logger.Sync() }()

			client, err := createClient(cmd.Context(), jph.NewZapLogger(logger))
			if err != nil {
				return err
			}

			srv, err := web.New(client, web.Options{
				PostsLimit:     postsLimit,
				UsersLimit:     usersLimit,
				RequestTimeout: viper.GetDuration("timeout"),
				Logger:         logger,
			})
			if err != nil {
				return err
			}

			return srv.ListenAndServe(cmd.Context(), viper.GetString("listen"))
		},
	}

	cmd.Flags().String("listen", constants.DefaultListenAddr, "address to listen on")
	cmd.Flags().IntVar(&postsLimit, "posts-limit", constants.DefaultPostsLimit, "maximum number of posts per page (0 for all)")
	cmd.Flags().IntVar(&usersLimit, "users-limit", constants.DefaultUsersLimit, "maximum number of users per page (0 for all)")
	_ = viper.BindPFlag("listen", cmd.Flags().Lookup("listen"))

	return cmd
}
