package specification

import "gorm.io/gorm"

// ByName matches the name exactly, case and whitespace included.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
