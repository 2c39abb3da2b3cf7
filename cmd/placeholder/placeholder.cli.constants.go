package main

// Command names
const (
	CmdNameResolve = "resolve"
	CmdNameInspect = "inspect"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagText        = "text"
	FlagFile        = "file"
	FlagData        = "data"
	FlagDataFile    = "data-file"
	FlagEnv         = "env"
	FlagEnvPrefix   = "env-prefix"
	FlagOutput      = "output"
	FlagPrefix      = "prefix"
	FlagSuffix      = "suffix"
	FlagSeparator   = "separator"
	FlagNoSeparator = "no-separator"
	FlagEscape      = "escape"
	FlagNoEscape    = "no-escape"
	FlagLenient     = "lenient"
	FlagFormat      = "format"
)

// Flag names - short form
const (
	FlagTextShort   = "t"
	FlagFileShort   = "f"
	FlagDataShort   = "d"
	FlagOutputShort = "o"
	FlagFormatShort = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingInput      = "input text required (use --text or --file)"
	ErrMsgConflictingInput  = "use either --text or --file, not both"
	ErrMsgInvalidData       = "invalid data flag, expected key=value"
	ErrMsgInvalidEscape     = "escape must be a single character"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgReadDataFailed    = "failed to load data file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgEngineFailed      = "invalid marker configuration"
	ErrMsgResolveFailed     = "resolution failed"
	ErrMsgInvalidFormat     = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `go-placeholder - Placeholder resolution CLI

Usage:
    placeholder <command> [options]

Commands:
    resolve     Resolve placeholders in text against key/value sources
    inspect     Show the parsed placeholder structure of text
    version     Show version information
    help        Show help for a command

Use "placeholder help <command>" for more information about a command.`

	HelpResolveUsage = `Resolve placeholders in text against key/value sources

Usage:
    placeholder resolve [options]

Options:
    -t, --text <text>        Text to resolve
    -f, --file <file>        Read text from file (use "-" for stdin)
    -d, --data <key=value>   Inline key/value pair (repeatable)
    --data-file <file>       YAML file of values (nested keys flatten to a.b.c)
    --env                    Resolve keys from the environment
    --env-prefix <prefix>    Only resolve environment keys with this prefix
    -o, --output <file>      Output file (default: stdout)
    --prefix <marker>        Placeholder prefix marker (default: "${")
    --suffix <marker>        Placeholder suffix marker (default: "}")
    --separator <marker>     Default-value separator (default: ":")
    --no-separator           Disable default-value splitting
    --escape <char>          Escape character (default: "\")
    --no-escape              Disable escaping
    --lenient                Leave unresolvable placeholders in place

Sources are consulted in order: --data pairs, --data-file, environment.

Examples:
    placeholder resolve -t 'Hello, ${user:World}!' -d user=Alice
    placeholder resolve -f config.tmpl --data-file values.yaml
    cat config.tmpl | placeholder resolve -f - --env
    placeholder resolve -t '${HOME}' --env -o resolved.txt`

	HelpInspectUsage = `Show the parsed placeholder structure of text

Usage:
    placeholder inspect [options]

Options:
    -t, --text <text>        Text to inspect
    -f, --file <file>        Read text from file (use "-" for stdin)
    -F, --format <format>    Output format: text, json (default: text)
    --prefix <marker>        Placeholder prefix marker (default: "${")
    --suffix <marker>        Placeholder suffix marker (default: "}")
    --separator <marker>     Default-value separator (default: ":")
    --no-separator           Disable default-value splitting
    --escape <char>          Escape character (default: "\")
    --no-escape              Disable escaping

Examples:
    placeholder inspect -t '${host:localhost}:${port:5432}'
    placeholder inspect -t '${${env}.url}' -F json`

	HelpVersionUsage = `Show version information

Usage:
    placeholder version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    placeholder help [command]

Commands:
    resolve     Show help for resolve command
    inspect     Show help for inspect command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-placeholder version %s\nGo: %s"
)

// Inspect output templates
const (
	InspectTextHeader      = "source: %q\n"
	InspectTextPart        = "%s%s %q\n"
	InspectTextKeyLabel    = "%skey:\n"
	InspectTextDefLabel    = "%sdefault:\n"
	InspectIndentStep      = "  "
	InspectPartNameText    = "text"
	InspectPartNameBracket = "placeholder"
)

// CLI metadata
const (
	CLIName = "placeholder"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
