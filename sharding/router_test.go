package sharding

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmitter собирает migration intents в память
type fakeEmitter struct {
	intents []MigrationIntent
	fail    error
}

func (f *fakeEmitter) EmitMigration(_ context.Context, intent MigrationIntent) error {
	if f.fail != nil {
		return f.fail
	}
	f.intents = append(f.intents, intent)
	return nil
}

func newTestRouter(t *testing.T) (*ShardRouter, *fakeEmitter) {
	table := newTestTable(t)
	emitter := &fakeEmitter{}
	return NewShardRouter(table, emitter), emitter
}

func TestRouteCountryDeterminism(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, country := range AllCountries() {
		first := router.RouteCountry(country)
		require.NotNil(t, first)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first.ShardID, router.RouteCountry(country).ShardID)
		}
	}
}

func TestRouteCodeKnown(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, "sea", router.RouteCode("VN").ShardID)
	assert.Equal(t, "sea", router.RouteCode("vietnam").ShardID)
	assert.Equal(t, "eu", router.RouteCode("DE").ShardID)
	assert.Equal(t, "na", router.RouteCode("US").ShardID)
}

// TestRouteCodeUnknownFallsBack: нераспознанный код никогда не роняет вызов,
// он деградирует в дефолтный регион
func TestRouteCodeUnknownFallsBack(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.NotPanics(t, func() {
		region := router.RouteCode("ZZ-NOPE")
		assert.Equal(t, router.DefaultSearchShard().ShardID, region.ShardID)
	})

	assert.Equal(t, router.DefaultSearchShard().ShardID, router.RouteCode("").ShardID)
}

func TestRequiresMigrationReflexive(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, country := range AllCountries() {
		assert.False(t, router.RequiresMigration(country.Code(), country.Code()),
			"requiresMigration(%s, %s) must be false", country.Code(), country.Code())
	}

	// Нерезолвящийся код против самого себя тоже не миграция:
	// обе стороны маршрутизируются одинаково
	assert.False(t, router.RequiresMigration("ZZ-NOPE", "ZZ-NOPE"))
}

func TestRequiresMigrationSymmetric(t *testing.T) {
	router, _ := newTestRouter(t)

	codes := []string{"VN", "SG", "DE", "US", "BR", "NG", "AU", "ZZ-NOPE", ""}
	for _, a := range codes {
		for _, b := range codes {
			assert.Equal(t,
				router.RequiresMigration(a, b),
				router.RequiresMigration(b, a),
				"requiresMigration not symmetric for %q, %q", a, b)
		}
	}
}

func TestRequiresMigrationScenario(t *testing.T) {
	router, _ := newTestRouter(t)

	// Вьетнам и Сингапур живут в одном регионе, Германия в другом
	assert.True(t, router.RequiresMigration("VN", "DE"))
	assert.False(t, router.RequiresMigration("VN", "SG"))
}

func TestMigrateUser(t *testing.T) {
	router, emitter := newTestRouter(t)

	newShardID := router.MigrateUser(context.Background(), 42, "VN", "DE")
	assert.Equal(t, router.RouteCode("DE").ShardID, newShardID)

	require.Len(t, emitter.intents, 1)
	intent := emitter.intents[0]
	assert.Equal(t, int64(42), intent.UserID)
	assert.Equal(t, "sea", intent.OldShardID)
	assert.Equal(t, "eu", intent.NewShardID)
	assert.Equal(t, "VN", intent.OldCountry)
	assert.Equal(t, "DE", intent.NewCountry)
	assert.False(t, intent.CreatedAt.IsZero())
}

// TestMigrateUserSameShardIsNoop: вызов при совпадающих шардах легален
// и возвращает прежний shard_id
func TestMigrateUserSameShardIsNoop(t *testing.T) {
	router, _ := newTestRouter(t)

	newShardID := router.MigrateUser(context.Background(), 42, "VN", "SG")
	assert.Equal(t, "sea", newShardID)
}

// TestMigrateUserEmitterFailure: аудит наблюдательный, неудача публикации
// не мешает вернуть новый shard_id
func TestMigrateUserEmitterFailure(t *testing.T) {
	table := newTestTable(t)
	router := NewShardRouter(table, &fakeEmitter{fail: fmt.Errorf("broker down")})

	newShardID := router.MigrateUser(context.Background(), 42, "VN", "DE")
	assert.Equal(t, "eu", newShardID)
}

func TestMigrateUserNilEmitter(t *testing.T) {
	table := newTestTable(t)
	router := NewShardRouter(table, nil)

	assert.NotPanics(t, func() {
		assert.Equal(t, "eu", router.MigrateUser(context.Background(), 1, "VN", "DE"))
	})
}

func TestRouteSearchQueryDefaults(t *testing.T) {
	router, _ := newTestRouter(t)

	defaultShard := router.DefaultSearchShard()
	assert.Equal(t, "sea", defaultShard.ShardID)

	// Пустой код - дефолтный регион, хендлеры свой дефолт не выдумывают
	assert.Equal(t, defaultShard.ShardID, router.RouteSearchQuery("").ShardID)
	assert.Equal(t, defaultShard.ShardID, router.RouteSearchQuery("   ").ShardID)

	// Непустой код маршрутизируется как обычно
	assert.Equal(t, "eu", router.RouteSearchQuery("FR").ShardID)
}

func TestGetShardInfo(t *testing.T) {
	router, _ := newTestRouter(t)

	info := router.GetShardInfo("JP")
	assert.Equal(t, "eas", info.ShardID)
	assert.Equal(t, "EAS", info.Code)
	assert.Equal(t, "East Asia", info.DisplayName)
	assert.NotEmpty(t, info.Emoji)
}

func TestShardIDProjections(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, "sea", router.ShardIDForCode("TH"))
	assert.Equal(t, "latam", router.ShardIDForCountry(Brazil))
}
