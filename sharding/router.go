package sharding

import (
	"context"
	"log"
	"strings"
	"time"
)

// MigrationIntent - событие о смене шарда пользователя. Наблюдательная запись
// для аудита и мониторинга: сам роутер ничего в хранилище не пишет,
// новый shard_id на пользователе сохраняет вызывающая сторона.
type MigrationIntent struct {
	UserID     int64     `json:"user_id"`
	OldShardID string    `json:"old_shard_id"`
	NewShardID string    `json:"new_shard_id"`
	OldCountry string    `json:"old_country"`
	NewCountry string    `json:"new_country"`
	CreatedAt  time.Time `json:"created_at"`
}

// MigrationEmitter публикует migration intent во внешний канал аудита
type MigrationEmitter interface {
	EmitMigration(ctx context.Context, intent MigrationIntent) error
}

// ShardRouter - публичный API гео-шардирования. Stateless: все операции - чистые
// функции над неизменяемой PartitionTable, можно дергать из любого числа
// горутин одновременно.
type ShardRouter struct {
	table   *PartitionTable
	emitter MigrationEmitter
}

// NewShardRouter создает роутер поверх собранной таблицы.
// emitter может быть nil - тогда миграции только логируются.
func NewShardRouter(table *PartitionTable, emitter MigrationEmitter) *ShardRouter {
	return &ShardRouter{table: table, emitter: emitter}
}

// Table возвращает таблицу разбиения (read-only)
func (r *ShardRouter) Table() *PartitionTable {
	return r.table
}

// RouteCountry возвращает регион для страны справочника.
// Неизвестная страна уходит в дефолтный регион, ошибок не бывает.
func (r *ShardRouter) RouteCountry(c Country) *ShardRegion {
	region := r.table.RegionFor(c)
	if region == nil {
		shardUnknownFallbacksTotal.Inc()
		region = r.table.DefaultRegion()
	}
	shardRoutesTotal.WithLabelValues(region.ShardID, "country").Inc()
	return region
}

// RouteCode возвращает регион для кода страны (ISO-код или имя ключа, регистр
// не важен). Нераспознанный код не должен ломать регистрацию или поиск, поэтому
// он деградирует в дефолтный регион, а не в ошибку.
func (r *ShardRouter) RouteCode(code string) *ShardRegion {
	region, ok := r.table.RegionForCode(code)
	if !ok {
		shardUnknownFallbacksTotal.Inc()
		region = r.table.DefaultRegion()
	}
	shardRoutesTotal.WithLabelValues(region.ShardID, "code").Inc()
	return region
}

// ShardIDForCode - shard_id региона для кода страны
func (r *ShardRouter) ShardIDForCode(code string) string {
	return r.RouteCode(code).ShardID
}

// ShardIDForCountry - shard_id региона для страны
func (r *ShardRouter) ShardIDForCountry(c Country) string {
	return r.RouteCountry(c).ShardID
}

// RequiresMigration сообщает, требует ли смена страны переноса на другой шард.
// Функция рефлексивно-ложная и симметричная: маршрутизация чистая, обе стороны
// считаются одной и той же таблицей.
func (r *ShardRouter) RequiresMigration(oldCode, newCode string) bool {
	return r.RouteCode(oldCode).ShardID != r.RouteCode(newCode).ShardID
}

// MigrateUser вычисляет новый shard_id для пользователя, сменившего страну,
// и публикует migration intent для аудита. Запись в хранилище не делает -
// сохранить новый shard_id на пользователе обязан вызывающий. Вызов при
// совпадающих шардах - легальный no-op, вернется прежний shard_id.
func (r *ShardRouter) MigrateUser(ctx context.Context, userID int64, oldCode, newCode string) string {
	oldRegion := r.RouteCode(oldCode)
	newRegion := r.RouteCode(newCode)

	intent := MigrationIntent{
		UserID:     userID,
		OldShardID: oldRegion.ShardID,
		NewShardID: newRegion.ShardID,
		OldCountry: oldCode,
		NewCountry: newCode,
		CreatedAt:  time.Now().UTC(),
	}

	shardMigrationsTotal.WithLabelValues(oldRegion.ShardID, newRegion.ShardID).Inc()
	log.Printf("Shard migration for user %d: %s -> %s (%s -> %s)",
		userID, oldRegion.ShardID, newRegion.ShardID, oldCode, newCode)

	// Аудит наблюдательный: неудача публикации не должна блокировать смену страны
	if r.emitter != nil {
		if err := r.emitter.EmitMigration(ctx, intent); err != nil {
			shardMigrationEmitErrors.Inc()
			log.Printf("Failed to emit migration intent for user %d: %v", userID, err)
		}
	}

	return newRegion.ShardID
}

// RouteSearchQuery - граница политики "поиск без страны": пустой код уходит
// в дефолтный регион, непустой маршрутизируется как обычно. Вызывающие не должны
// выдумывать собственный дефолт.
func (r *ShardRouter) RouteSearchQuery(code string) *ShardRegion {
	if strings.TrimSpace(code) == "" {
		region := r.table.DefaultRegion()
		shardRoutesTotal.WithLabelValues(region.ShardID, "search_default").Inc()
		return region
	}
	return r.RouteCode(code)
}

// DefaultSearchShard возвращает назначенный дефолтный регион
func (r *ShardRouter) DefaultSearchShard() *ShardRegion {
	return r.table.DefaultRegion()
}

// GetShardInfo возвращает проекцию региона для кода страны
func (r *ShardRouter) GetShardInfo(code string) ShardInfo {
	return r.RouteCode(code).Info()
}
