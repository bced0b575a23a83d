package commands

import (
	"fmt"
	"io"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/internal/pages"
	"github.com/fivetwenty-io/jph/pkg/fetchstate"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/fivetwenty-io/jph/pkg/listview"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resource binds a page to its terminal table layout.
type resource[T any] struct {
	page   pages.Page[T]
	header []string
	row    func(item T) []string
}

func (r resource[T]) view(snap fetchstate.Snapshot[T]) listview.View[[]string] {
	return listview.Build(listview.Props[T, []string]{
		Items: snap.Filter.Visible,
		RenderItem: func(item T, _ int) []string {
			return r.row(item)
		},
		KeyExtractor: r.page.Key,
		IsLoading:    snap.Loading(),
		EmptyMessage: r.page.EmptyMessage,
	})
}

// render writes a settled snapshot in the requested format.
func (r resource[T]) render(w io.Writer, format string, snap fetchstate.Snapshot[T]) error {
	if format != constants.FormatTable {
		items := snap.Filter.Visible
		if items == nil {
			items = []T{}
		}

		return writeStructured(w, format, items)
	}

	_, _ = fmt.Fprintf(w, "%s\n%s\n\n", r.page.Title, r.page.Subtitle)

	return renderView(w, r.header, r.view(snap))
}

func (r resource[T]) newListCommand() *cobra.Command {
	var (
		search string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", r.page.Name),
		Long:  fmt.Sprintf("Fetch %s once and print them, optionally filtered by a search term", r.page.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			if limit < 0 {
				return constants.ErrNegativeLimit
			}

			logger := newLogger(cmd.ErrOrStderr(), zap.WarnLevel)
			defer func() { _ = logger.Sync() }()

			jphLogger := jph.NewZapLogger(logger)

			client, err := createClient(cmd.Context(), jphLogger)
			if err != nil {
				return err
			}

			ctrl := r.page.NewController(client, limit, jphLogger)
			defer ctrl.Close()

			if format == constants.FormatTable && isTerminal(cmd.ErrOrStderr()) {
				unsubscribe := ctrl.Subscribe(func(snap fetchstate.Snapshot[T]) {
					if snap.Loading() {
						_, _ = fmt.Fprintln(cmd.ErrOrStderr(), listview.DefaultLoadingMessage)
					}
				})
				defer unsubscribe()
			}

			snap, err := ctrl.Load(cmd.Context())
			if err != nil {
				return err
			}

			snap = ctrl.SetSearchTerm(search)

			if snap.Failed() {
				printErrorPanel(cmd.ErrOrStderr(), snap.State.ErrorMessage,
					fmt.Sprintf("Run '%s' again to retry.", cmd.CommandPath()))

				return ErrLoadFailed
			}

			return r.render(cmd.OutOrStdout(), format, snap)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", fmt.Sprintf("only show %s matching this text", r.page.Name))
	cmd.Flags().IntVarP(&limit, "limit", "l", r.page.DefaultLimit, "maximum number of items to keep (0 for all)")

	return cmd
}
