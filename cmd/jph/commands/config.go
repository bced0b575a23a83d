package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/fivetwenty-io/jph/pkg/jphclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configKeys lists the settable keys with their validators.
var configKeys = map[string]func(value string) (interface{}, error){
	"api": func(value string) (interface{}, error) {
		return jphclient.NormalizeEndpoint(value)
	},
	"output": func(value string) (interface{}, error) {
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			return value, nil
		default:
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}
	},
	"timeout": func(value string) (interface{}, error) {
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: timeout %q", constants.ErrInvalidConfigValue, value)
		}

		return d.String(), nil
	},
	"retry-max": func(value string) (interface{}, error) {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: retry-max %q", constants.ErrInvalidConfigValue, value)
		}

		return n, nil
	},
	"verbose": func(value string) (interface{}, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: verbose %q", constants.ErrInvalidConfigValue, value)
		}

		return b, nil
	},
	"listen": func(value string) (interface{}, error) {
		return value, nil
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the jph configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags, environment and config file are merged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			settings := effectiveSettings()

			if format != constants.FormatTable {
				return writeStructured(cmd.OutOrStdout(), format, settings)
			}

			return displaySettingsTable(cmd.OutOrStdout(), settings)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "set KEY VALUE",
		Short:   "Set a configuration value",
		Long:    "Validate and store a configuration value (api, output, timeout, retry-max, verbose, listen). Put -- before the key when the value starts with a dash.",
		Example: "  jph config set output json\n  jph config set -- retry-max 0",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, raw := args[0], args[1]

			validate, ok := configKeys[key]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			value, err := validate(raw)
			if err != nil {
				return err
			}

			settings, err := readConfigFile()
			if err != nil {
				return err
			}

			settings[key] = value

			err = writeConfigFile(settings)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %v\n", key, value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a value from the configuration file so the default applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			if _, ok := configKeys[key]; !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			settings, err := readConfigFile()
			if err != nil {
				return err
			}

			delete(settings, key)

			err = writeConfigFile(settings)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func effectiveSettings() map[string]string {
	api := viper.GetString("api")
	if api == "" {
		api = jph.DefaultAPIEndpoint
	}

	output := viper.GetString("output")
	if output == "" {
		output = constants.FormatTable
	}

	timeout := "none"
	if d := viper.GetDuration("timeout"); d > 0 {
		timeout = d.String()
	}

	listen := viper.GetString("listen")
	if listen == "" {
		listen = constants.DefaultListenAddr
	}

	return map[string]string{
		"api":         api,
		"output":      output,
		"timeout":     timeout,
		"retry-max":   strconv.Itoa(viper.GetInt("retry-max")),
		"verbose":     strconv.FormatBool(viper.GetBool("verbose")),
		"listen":      listen,
		"config-file": configFilePath(),
	}
}

func displaySettingsTable(w io.Writer, settings map[string]string) error {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	for _, key := range keys {
		err := table.Append([]string{key, settings[key]})
		if err != nil {
			return fmt.Errorf("failed to append %s to table: %w", key, err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render configuration table: %w", err)
	}

	return nil
}

// configFilePath returns the file in use, or ~/.jph/config.yml.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType)
}

func readConfigFile() (map[string]interface{}, error) {
	settings := map[string]interface{}{}

	path := configFilePath()
	if path == "" {
		return nil, constants.ErrNoHomeDirectory
	}

	// path is the configured file or one derived from the home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if settings == nil {
		settings = map[string]interface{}{}
	}

	return settings, nil
}

func writeConfigFile(settings map[string]interface{}) error {
	path := configFilePath()
	if path == "" {
		return constants.ErrNoHomeDirectory
	}

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
