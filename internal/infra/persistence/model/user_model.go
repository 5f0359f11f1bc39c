// Package model holds the gorm mappings of the storefront tables.
package model

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Email       string    `gorm:"type:text;unique;not null"`
	Phone       string    `gorm:"type:text;unique;not null"`
	Password    string    `gorm:"type:text;not null"`
	Name        string    `gorm:"type:text;not null"`
	Role        string    `gorm:"type:text;default:'user'"`
	Address     string    `gorm:"type:text"`
	CreatedAt   Timestamp `gorm:"type:datetime;autoCreateTime:false"`
	LastLoginAt Timestamp `gorm:"type:datetime"`
	AvatarURL   string    `gorm:"column:avatar_url;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
