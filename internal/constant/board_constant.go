package constant

const (
	DefaultBoardName = "New Board"

	DefaultNoteText   = ""
	DefaultNoteX      = 100.0
	DefaultNoteY      = 100.0
	DefaultNoteColor  = "#fffb7d"
	DefaultNoteHeight = 150.0
)

// Response messages. Clients match on these strings, keep them stable.
const (
	MessageWelcome            = "Welcome to the bulletin board!"
	MessageMissingBoardID     = "Missing board_id"
	MessageMissingName        = "Missing name"
	MessageMissingFormatInput = "Missing text or format type"
	MessageFormatFailed       = "Failed to get AI response"
	MessageBoardNotFound      = "Board not found"
	MessageNoteNotFound       = "Note not found"
	MessageBoardDeleted       = "Board deleted"
	MessageNoteDeleted        = "Note deleted"
	MessageInvalidBody        = "Invalid request body"
	MessageInternalError      = "Internal server error"
)
