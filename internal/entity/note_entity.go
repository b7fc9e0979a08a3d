package entity

type Note struct {
	Id      int64
	Text    string
	X       float64
	Y       float64
	Color   string
	Height  float64
	BoardId *int64 // nil when an update cleared it
	Tags    []string
}
