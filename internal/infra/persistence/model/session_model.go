package model

import (
	"gorm.io/datatypes"
)

// SessionSlot is the primary key of the single device session row.
const SessionSlot = 1

// SessionUserJSON is the user snapshot serialized into sessions.user_json.
type SessionUserJSON struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SessionModel mirrors the 'sessions' table. The scalar user columns duplicate the snapshot for direct reads.
type SessionModel struct {
	Slot      int                                 `gorm:"primaryKey;autoIncrement:false"`
	SessionID string                              `gorm:"type:text;not null"`
	LoggedIn  bool                                `gorm:"not null;default:false"`
	UserJSON  datatypes.JSONType[SessionUserJSON] `gorm:"column:user_json"`
	UserID    int64
	Email     string    `gorm:"type:text"`
	Phone     string    `gorm:"type:text"`
	Name      string    `gorm:"type:text"`
	Role      string    `gorm:"type:text"`
	CreatedAt Timestamp `gorm:"type:datetime;autoCreateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
