package services

import (
	"context"
	"fmt"
	"log"
)

const shardUserCountKey = "shard:user_count"

// ShardStatsService - счетчики заселенности шардов в Redis.
// Данные наблюдательные (для дашборда), источник истины - shard_id в БД.
type ShardStatsService struct{}

func NewShardStatsService() *ShardStatsService {
	return &ShardStatsService{}
}

// TrackUserAssigned инкрементирует счетчик шарда при регистрации
func (s *ShardStatsService) TrackUserAssigned(ctx context.Context, shardID string) {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.HIncrBy(ctx, shardUserCountKey, shardID, 1).Err(); err != nil {
		log.Printf("Failed to track user assignment for shard %s: %v", shardID, err)
	}
}

// TrackUserMigrated переносит единицу счетчика между шардами
func (s *ShardStatsService) TrackUserMigrated(ctx context.Context, oldShardID, newShardID string) {
	if RedisClient == nil || oldShardID == newShardID {
		return
	}
	if err := RedisClient.HIncrBy(ctx, shardUserCountKey, oldShardID, -1).Err(); err != nil {
		log.Printf("Failed to decrement shard counter %s: %v", oldShardID, err)
	}
	if err := RedisClient.HIncrBy(ctx, shardUserCountKey, newShardID, 1).Err(); err != nil {
		log.Printf("Failed to increment shard counter %s: %v", newShardID, err)
	}
}

// GetStats возвращает снимок счетчиков по шардам
func (s *ShardStatsService) GetStats(ctx context.Context) (map[string]string, error) {
	if RedisClient == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return RedisClient.HGetAll(ctx, shardUserCountKey).Result()
}

// ShardStatsInstance глобальный экземпляр сервиса статистики
var ShardStatsInstance = NewShardStatsService()
