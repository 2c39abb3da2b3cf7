package internal

// Token type display names
const (
	TokenNameText      = "Text"
	TokenNamePrefix    = "Prefix"
	TokenNameSuffix    = "Suffix"
	TokenNameSeparator = "Separator"
	TokenNameUnknown   = "Unknown"
)

// Log message constants
const (
	LogMsgScannerCreated = "scanner created"
	LogMsgScanStart      = "scan started"
	LogMsgScanEnd        = "scan finished"
)

// Log field constants
const (
	LogFieldSourceLen = "source_len"
	LogFieldTokens    = "tokens"
)
