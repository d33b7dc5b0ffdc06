package flags

// Flag name constants for the substra CLI flags.

// Global flags
const (
	// FlagConfig specifies the profile file path
	FlagConfig = "config"
	// FlagProfile selects the profile to use
	FlagProfile = "profile"
	// FlagLogLevel sets the log level
	FlagLogLevel = "log-level"
	// FlagVerbose enables debug logging
	FlagVerbose = "verbose"
	// FlagVerboseShort is the short form of verbose flag
	FlagVerboseShort = "v"
)

// Output formatting flags
const (
	// FlagJSON prints raw JSON instead of tables and details
	FlagJSON = "json"
	// FlagExpand prints full key lists instead of counts
	FlagExpand = "expand"
)

// Operation flags
const (
	// FlagFilter selects listed items with a CEL expression
	FlagFilter = "filter"
	// FlagSearch forwards search terms to the node
	FlagSearch = "search"
	// FlagFolder specifies the download destination
	FlagFolder = "folder"
	// FlagSort orders a leaderboard
	FlagSort = "sort"
	// FlagExistOK returns already registered tasks instead of failing
	FlagExistOK = "exist-ok"
)

// Profile flags
const (
	// FlagVersion sets the API version of a profile
	FlagVersion = "version"
	// FlagInsecure disables TLS verification for a profile
	FlagInsecure = "insecure"
	// FlagInsecureShort is the short form of insecure flag
	FlagInsecureShort = "k"
	// FlagUser sets the basic auth user of a profile
	FlagUser = "user"
	// FlagUserShort is the short form of user flag
	FlagUserShort = "u"
	// FlagPassword sets the basic auth password of a profile
	FlagPassword = "password"
	// FlagPasswordShort is the short form of password flag
	FlagPasswordShort = "p"
)

// Default values for commonly used flags
const (
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "warn"
	// DefaultSort is the default leaderboard order
	DefaultSort = "desc"
)
