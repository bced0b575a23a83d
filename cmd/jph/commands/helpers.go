package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/pkg/fetchstate"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/fivetwenty-io/jph/pkg/jphclient"
	"github.com/fivetwenty-io/jph/pkg/listview"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultJSONIndent = 2

	errorPanelTitle = "Oops! Something went wrong"
)

// ErrLoadFailed is returned after the error panel has been printed; callers
// should exit non-zero without printing the error again.
var ErrLoadFailed = errors.New("load failed")

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))
	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

// newLogger builds the CLI logger writing to w at level, or at debug with --verbose.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	if viper.GetBool("verbose") {
		level = zap.DebugLevel
	}

	sink := zapcore.Lock(zapcore.AddSync(w))
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), sink, level)

	return zap.New(core, zap.AddCaller(), zap.Development(), zap.ErrorOutput(sink))
}

// clientConfig assembles the API client configuration from flags, env and the config file.
func clientConfig(logger jph.Logger) *jph.Config {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		endpoint = jph.DefaultAPIEndpoint
	}

	return &jph.Config{
		APIEndpoint:  endpoint,
		HTTPTimeout:  viper.GetDuration("timeout"),
		RetryMax:     viper.GetInt("retry-max"),
		RetryWaitMin: constants.DefaultRetryWaitMin,
		RetryWaitMax: constants.DefaultRetryWaitMax,
		Debug:        viper.GetBool("verbose"),
		Logger:       logger,
	}
}

func createClient(ctx context.Context, logger jph.Logger) (jph.Client, error) {
	client, err := jphclient.New(ctx, clientConfig(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return client, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w interface{}) bool {
	file, ok := w.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}

// statusLabel renders a fetch status for humans, e.g. "Success".
func statusLabel(status fetchstate.Status) string {
	return cases.Title(language.English).String(status.String())
}

// truncate shortens text to the table column width.
func truncate(text string, length int) string {
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= length {
		return text
	}

	return string(runes[:length-len(constants.TruncateEllipsis)]) + constants.TruncateEllipsis
}

// printErrorPanel prints the failure panel shown when a page cannot load.
func printErrorPanel(w io.Writer, message, hint string) {
	_, _ = fmt.Fprintln(w, errorPanelTitle)
	_, _ = fmt.Fprintln(w, message)

	if hint != "" {
		_, _ = fmt.Fprintln(w, hint)
	}
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		err := encoder.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		err := encoder.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		err = encoder.Close()
		if err != nil {
			return fmt.Errorf("failed to flush YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}

	return nil
}

// renderView prints a list view as a table, or its message when it has no rows.
func renderView(w io.Writer, header []string, view listview.View[[]string]) error {
	if view.State != listview.StatePopulated {
		_, _ = fmt.Fprintln(w, view.Message)

		return nil
	}

	table := tablewriter.NewWriter(w)

	columns := make([]any, len(header))
	for i, column := range header {
		columns[i] = column
	}

	table.Header(columns...)

	for _, row := range view.Rows {
		err := table.Append(row.Content)
		if err != nil {
			return fmt.Errorf("failed to append row %s: %w", row.Key, err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintln(w, view.Announcement)

	return nil
}
