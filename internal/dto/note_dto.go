package dto

// NoteFields is the writable shape shared by create and update. Pointer fields
// distinguish "omitted" from zero so defaults apply only to omitted keys.
type NoteFields struct {
	Text   *string  `json:"text"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Color  *string  `json:"color"`
	Height *float64 `json:"height"`
	Tags   []string `json:"tags"`
}

type CreateNoteRequest struct {
	NoteFields
	// Zero is treated as missing.
	BoardId *int64 `json:"board_id" validate:"required,ne=0"`

	// Body is the request payload as sent; it is echoed back merged with the id.
	Body map[string]interface{} `json:"-"`
}

type UpdateNoteRequest struct {
	Id int64 `json:"-"`
	NoteFields
	BoardId *int64 `json:"board_id"`

	Body map[string]interface{} `json:"-"`
}

// NoteWriteResponse is {"id": id} merged with the request body. Keys present
// in the body take precedence, including "id".
type NoteWriteResponse map[string]interface{}

func NewNoteWriteResponse(id int64, body map[string]interface{}) NoteWriteResponse {
	res := NoteWriteResponse{"id": id}
	for k, v := range body {
		res[k] = v
	}
	return res
}

type NoteResponse struct {
	Id      int64    `json:"id"`
	Text    string   `json:"text"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Color   string   `json:"color"`
	Height  float64  `json:"height"`
	BoardId *int64   `json:"board_id"`
	Tags    []string `json:"tags"`
}

type FormatNoteRequest struct {
	NoteId int64  `json:"note_id"`
	Text   string `json:"text" validate:"required"`
	Format string `json:"format" validate:"required"`
}

type FormatNoteResponse struct {
	Formatted string `json:"formatted"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
