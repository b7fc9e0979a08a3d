package specification

import "gorm.io/gorm"

type ByBoardID struct {
	BoardID int64
}

func (s ByBoardID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("board_id = ?", s.BoardID)
}
