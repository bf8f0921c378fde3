package models

import "time"

// ShardMigration - журнальная запись о смене шарда пользователя.
// Пишется консьюмером событий миграции, роутер сюда не пишет.
type ShardMigration struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64     `gorm:"index" json:"user_id"`
	OldShardID string    `gorm:"size:60" json:"old_shard_id"`
	NewShardID string    `gorm:"size:60;index" json:"new_shard_id"`
	OldCountry string    `gorm:"size:60" json:"old_country"`
	NewCountry string    `gorm:"size:60" json:"new_country"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ShardMigration) TableName() string {
	return "shard_migrations"
}
