package models

import (
	"time"
)

// User - анкета соискателя. Country хранит имя ключа страны из справочника
// (например "VIETNAM"), ShardID - назначенный гео-шард. ShardID выставляется
// при регистрации и меняется только через миграцию, сам по себе он не является
// границей хранения - это метка для маршрутизации и фильтрации.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Nickname  string    `gorm:"size:60;uniqueIndex" json:"nickname"`
	FirstName string    `gorm:"size:255" json:"first_name"`
	LastName  string    `gorm:"size:255" json:"last_name"`
	Headline  string    `gorm:"size:255" json:"headline"`
	Birthday  time.Time `json:"birthday"`
	City      string    `gorm:"size:255" json:"city"`
	Country   string    `gorm:"size:60;index" json:"country"`
	ShardID   string    `gorm:"size:60;index" json:"shard_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
