package entity

// Tag names are matched exactly: no case folding, no trimming.
type Tag struct {
	Id   int64
	Name string
}
