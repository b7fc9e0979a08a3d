package dto

type CreateBoardRequest struct {
	// Nil means the key was absent or null; an explicit "" is kept as-is.
	Name *string `json:"name"`
}

type RenameBoardRequest struct {
	Id   int64  `json:"-"`
	Name string `json:"name" validate:"notblank"`
}

type BoardResponse struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}
