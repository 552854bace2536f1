package models

import "time"

// MapShare is one share link for a map. A map has at most one share row;
// re-sharing refreshes the code and expiry.
type MapShare struct {
	ID         int       `gorm:"column:id;primaryKey"`
	MapID      int       `gorm:"column:map_id;uniqueIndex"`
	ShareCode  string    `gorm:"column:share_code;uniqueIndex;size:64"`
	IsOpen     bool      `gorm:"column:is_open"`
	CreatedUTC time.Time `gorm:"column:created_utc"`
	UpdatedUTC time.Time `gorm:"column:updated_utc"`
	ExpiresUTC time.Time `gorm:"column:expires_utc"`
}

// TableName overrides the table name.
func (MapShare) TableName() string {
	return "map_shares"
}

// Expired reports whether the share is past its expiry.
func (s *MapShare) Expired(now time.Time) bool {
	return !s.ExpiresUTC.After(now)
}

// ShareResponse is returned after creating or refreshing a share.
type ShareResponse struct {
	MapID      int       `json:"mapId"`
	ShareCode  string    `json:"shareCode"`
	ExpiresUTC time.Time `json:"expiresUtc"`
}

// CreateShareRequest opens or refreshes a share for a map.
type CreateShareRequest struct {
	UserID       int    `json:"userId"`
	SessionToken string `json:"sessionToken"`
}
