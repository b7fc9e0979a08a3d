package model

type Tag struct {
	Id   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex:idx_tags_name"`
}

func (Tag) TableName() string {
	return "tags"
}

// NoteTag is the note/tag association. It has no identity of its own.
type NoteTag struct {
	NoteId int64 `gorm:"primaryKey;autoIncrement:false"`
	TagId  int64 `gorm:"primaryKey;autoIncrement:false;index"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
