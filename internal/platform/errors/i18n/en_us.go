package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// They are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown              = "UNKNOWN"
	CodeNotFound             = "NOT_FOUND"
	CodeNPCNotFound          = "NPC_NOT_FOUND"
	CodeMoveNotFound         = "MOVE_NOT_FOUND"
	CodeInvalidArgument      = "INVALID_ARGUMENT"
	CodeFilterInvalid        = "FILTER_INVALID"
	CodeSeedOutOfRange       = "SEED_OUT_OF_RANGE"
	CodeCatalogInvalid       = "CATALOG_INVALID"
	CodeNarrationUnavailable = "NARRATION_UNAVAILABLE"
	CodeNarrationFailed      = "NARRATION_FAILED"
)

func init() {
	lang := language.English

	message.SetString(lang, CodeUnknown, "An unexpected error occurred.")
	message.SetString(lang, CodeNotFound, "The requested resource was not found.")
	message.SetString(lang, CodeNPCNotFound, `NPC "{{.Key}}" does not exist.`)
	message.SetString(lang, CodeMoveNotFound, `Move "{{.Key}}" does not exist.`)
	message.SetString(lang, CodeInvalidArgument, "The request is invalid.")
	message.SetString(lang, CodeFilterInvalid, "The filter expression is invalid.")
	message.SetString(lang, CodeSeedOutOfRange, "The seed is out of range.")
	message.SetString(lang, CodeCatalogInvalid, "The battle catalog is invalid.")
	message.SetString(lang, CodeNarrationUnavailable, "Narration is not available right now.")
	message.SetString(lang, CodeNarrationFailed, "Narration failed.")
}
