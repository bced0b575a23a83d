package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/pkg/fetchstate"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Browse commands.
const (
	browseQuit  = ":quit"
	browseClear = ":clear"
	browseRetry = ":retry"
)

func (r resource[T]) newBrowseCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: fmt.Sprintf("Search %s interactively", r.page.Name),
		Long: fmt.Sprintf(`Fetch %s once, then read search terms from standard input.

Every line replaces the search term and redraws the list without another
request. Special commands:
  :clear   clear the search term
  :retry   fetch again
  :quit    exit`, r.page.Name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			out := cmd.OutOrStdout()
			unsubscribe := ctrl.Subscribe(func(snap fetchstate.Snapshot[T]) {
				r.draw(out, snap)
			})
			defer unsubscribe()

			_, err = ctrl.Load(cmd.Context())
			if err != nil {
				return err
			}

			return r.browse(cmd, ctrl)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", r.page.DefaultLimit, "maximum number of items to keep (0 for all)")

	return cmd
}

// browse feeds input lines to the controller until :quit or end of input.
func (r resource[T]) browse(cmd *cobra.Command, ctrl *fetchstate.Controller[T]) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	interactive := isTerminal(cmd.InOrStdin())

	for {
		if interactive {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "search [%s]> ", ctrl.Snapshot().Filter.SearchTerm)
		}

		if !in.Scan() {
			break
		}

		line := in.Text()

		switch strings.TrimSpace(line) {
		case browseQuit:
			return nil
		case browseClear:
			ctrl.ClearSearch()
		case browseRetry:
			_, err := ctrl.Retry(cmd.Context())
			if err != nil {
				return err
			}
		default:
			ctrl.SetSearchTerm(line)
		}
	}

	err := in.Err()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// draw prints one frame for snap.
func (r resource[T]) draw(w io.Writer, snap fetchstate.Snapshot[T]) {
	_, _ = fmt.Fprintf(w, "\n%s [%s]\n", r.page.Title, statusLabel(snap.State.Status))

	if snap.Filter.SearchTerm != "" {
		_, _ = fmt.Fprintf(w, "Search: %q\n", snap.Filter.SearchTerm)
	}

	if snap.Failed() {
		printErrorPanel(w, snap.State.ErrorMessage, "Type "+browseRetry+" to try again.")

		return
	}

	if snap.State.Status == fetchstate.StatusIdle {
		return
	}

	err := renderView(w, r.header, r.view(snap))
	if err != nil {
		_, _ = fmt.Fprintln(w, err)
	}
}
