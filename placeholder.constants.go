package placeholder

import "time"

// Default marker configuration - the ${key:default} syntax used by most
// configuration formats.
const (
	DefaultPrefix    = "${"
	DefaultSuffix    = "}"
	DefaultSeparator = ":"
)

// DefaultEscape is the default escape character.
const DefaultEscape byte = '\\'

// Part type display names
const (
	PartNameText        = "Text"
	PartNamePlaceholder = "Placeholder"
	PartNameUnknown     = "Unknown"
)

// Display truncation for debug output
const (
	MaxStringDisplayLength = 40
	TruncationSuffix       = "..."
)

// Error code constants for categorization
const (
	ErrCodeConfig  = "PLACEHOLDER_CONFIG"
	ErrCodeResolve = "PLACEHOLDER_RESOLVE"
	ErrCodeSource  = "PLACEHOLDER_SOURCE"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgEmptyPrefix     = "prefix marker cannot be empty"
	ErrMsgEmptySuffix     = "suffix marker cannot be empty"
	ErrMsgNilResolver     = "resolver cannot be nil"
	ErrMsgNilParsedValue  = "parsed value cannot be nil"
	ErrMsgUnknownPartType = "unknown part type"

	ErrMsgYAMLParseFailed = "failed to parse YAML document"
	ErrMsgYAMLReadFailed  = "failed to read YAML file"

	ErrMsgPostgresEmptyConnString = "postgres connection string cannot be empty"
	ErrMsgPostgresConnectFailed   = "failed to connect to postgres"
	ErrMsgPostgresMigrateFailed   = "failed to run postgres migration"
	ErrMsgPostgresClosed          = "postgres resolver is closed"
)

// Resolution failure message formats. The rendered text is part of the
// public contract: callers match on it in logs and tests.
const (
	ErrFmtUnresolvablePlaceholder = "Could not resolve placeholder '%s'"
	ErrFmtCircularReference       = "Circular placeholder reference '%s'"
	StrValueChainIntro            = " in value "
	StrValueChainSep              = " <-- "
)

// Log message constants
const (
	LogMsgEngineCreated         = "engine created"
	LogMsgParseStart            = "parse started"
	LogMsgParseEnd              = "parse finished"
	LogMsgResolveStart          = "resolve started"
	LogMsgResolveEnd            = "resolve finished"
	LogMsgPostgresResolverReady = "postgres resolver ready"
	LogMsgPostgresLookupFailed  = "postgres lookup failed, treating key as unresolved"
)

// Log field constants
const (
	LogFieldSourceLen = "source_len"
	LogFieldParts     = "parts"
	LogFieldPrefix    = "prefix"
	LogFieldSuffix    = "suffix"
	LogFieldKey       = "key"
	LogFieldOutputLen = "output_len"
	LogFieldTable     = "table"
)

// Key path separator used by the YAML resolver when flattening nested
// documents into lookup keys.
const YAMLKeySeparator = "."

// PostgreSQL resolver defaults
const (
	PostgresDefaultTable        = "placeholder_values"
	PostgresDefaultKeyColumn    = "key"
	PostgresDefaultValueColumn  = "value"
	PostgresDefaultMaxOpenConns = 25
	PostgresDefaultMaxIdleConns = 5
)

// PostgreSQL resolver timing defaults
const (
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)
