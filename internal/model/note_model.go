package model

// Note columns carry no database defaults: GORM skips zero values on insert
// for defaulted columns, which would turn an explicit x=0 into the default.
type Note struct {
	Id      int64   `gorm:"primaryKey;autoIncrement"`
	Text    string  `gorm:"type:text"`
	X       float64 `gorm:"not null"`
	Y       float64 `gorm:"not null"`
	Color   string  `gorm:"type:varchar(32)"`
	Height  float64 `gorm:"not null"`
	BoardId *int64  `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}
