// Package entity defines the domain entities for the logins feature.
package entity

import "time"

// User represents a local account. Users are created and deleted elsewhere;
// the logins feature only reads them.
type User struct {
	// ID is the primary key of the Users table.
	ID uint `gorm:"column:Id;primaryKey"`

	// UserName is the account's display login name.
	UserName string `gorm:"column:UserName;size:256"`

	// Email is the account's email address.
	Email string `gorm:"column:Email;size:256"`

	CreatedAt time.Time `gorm:"column:CreatedAt"`
}

// TableName returns the default table name for GORM.
func (User) TableName() string {
	return "Users"
}
