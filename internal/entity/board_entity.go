package entity

type Board struct {
	Id   int64
	Name string
}
