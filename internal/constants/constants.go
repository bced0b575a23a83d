package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for API requests. Zero means
	// the request waits for the network stack to resolve or fail.
	DefaultHTTPTimeout = 0 * time.Second

	// ServerReadHeaderTimeout bounds header reads on the HTML server.
	ServerReadHeaderTimeout = 10 * time.Second

	// ServerShutdownTimeout bounds graceful shutdown of the HTML server.
	ServerShutdownTimeout = 15 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries. Retries are
	// user initiated unless configured otherwise.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Page limits.
const (
	// DefaultPostsLimit caps the posts page.
	DefaultPostsLimit = 10

	// DefaultUsersLimit caps the users page.
	DefaultUsersLimit = 20
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first non-2xx status.
	HTTPStatusMultipleChoices = 300
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Server defaults.
const (
	// DefaultListenAddr is the default address for `jph serve`.
	DefaultListenAddr = ":8080"

	// DefaultCompressLevel is the gzip level for HTML responses.
	DefaultCompressLevel = 5
)

// UI and display constants.
const (
	// DefaultTruncateLength is the column width used for long text in tables.
	DefaultTruncateLength = 60

	// TruncateEllipsis is appended to truncated text.
	TruncateEllipsis = "..."
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the config file.
	ConfigDirName = ".jph"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file extension.
	ConfigFileType = "yml"

	// EnvPrefix prefixes environment overrides (JPH_API, JPH_OUTPUT, ...).
	EnvPrefix = "JPH"
)
