package constant

// FormatNotePrompt takes the target format first, then the note text.
const FormatNotePrompt = "Reformat this text into a %s: \n\n%s \n\n Do not change words unless absolutely necessary. Do not return ANYTHING other than the reformatted text (do NOT return 'here is your reformatted text, etc)."
