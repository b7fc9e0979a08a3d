package model

type Board struct {
	Id   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (Board) TableName() string {
	return "boards"
}
