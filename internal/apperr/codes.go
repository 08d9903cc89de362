package apperr

const (
	CodeInvalidFormat  = "INVALID_COMMAND_FORMAT"
	CodeUnknownCommand = "UNKNOWN_COMMAND"
	CodeInvalidIndex   = "INVALID_INDEX"
	CodeInvalidValue   = "INVALID_VALUE"
	CodeInternal       = "INTERNAL"
)

// Shared message templates.
const (
	MessageInvalidCommandFormat = "Invalid command format!"
	MessageUnknownCommand       = "Unknown command"
)
