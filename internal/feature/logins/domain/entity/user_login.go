package entity

// UserLogin binds a local user to one identity issued by an external provider.
// (LoginProvider, ProviderKey) is unique across the table.
type UserLogin struct {
	LoginProvider       string `gorm:"column:LoginProvider;size:128;not null;uniqueIndex:ux_userlogins_provider_key"`
	ProviderKey         string `gorm:"column:ProviderKey;size:128;not null;uniqueIndex:ux_userlogins_provider_key"`
	ProviderDisplayName string `gorm:"column:ProviderDisplayName;size:256"`
	UserID              uint   `gorm:"column:UserId;not null;index"`
}

// TableName returns the default table name for GORM.
func (UserLogin) TableName() string {
	return "UserLogins"
}
