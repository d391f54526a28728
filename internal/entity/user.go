package entity

import "database/sql"

type User struct {
	Base

	Name string

	// SiblingID links two household members so sibling-aware badges can read
	// the other child's day. It may be empty for single-child households.
	SiblingID sql.NullString
	Sibling   *User `gorm:"foreignKey:SiblingID"`
}
