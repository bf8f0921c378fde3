package services

import (
	"context"
	"fmt"
	"testing"

	"jobhub/db"
	"jobhub/models"
	"jobhub/sharding"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB поднимает in-memory sqlite вместо PostgreSQL и собирает роутер
// на встроенной топологии
func setupTestDB(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	orm, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, orm.AutoMigrate(&models.User{}, &models.ShardMigration{}))
	db.ORM = orm

	table, err := sharding.NewPartitionTable(sharding.DefaultTopology(), sharding.DefaultShardID)
	require.NoError(t, err)
	Router = sharding.NewShardRouter(table, nil)

	t.Cleanup(func() {
		db.ORM = nil
		Router = nil
	})
}

func fakeUser(country string) *models.User {
	return &models.User{
		Nickname:  gofakeit.Username() + gofakeit.DigitN(6),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Headline:  gofakeit.JobTitle(),
		City:      gofakeit.City(),
		Country:   country,
	}
}

func TestRegisterUserAssignsShard(t *testing.T) {
	setupTestDB(t)
	us := NewUserService()
	ctx := context.Background()

	userID, err := us.RegisterUser(ctx, fakeUser("VIETNAM"))
	require.NoError(t, err)

	user, err := us.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "sea", user.ShardID)
	assert.Equal(t, "VIETNAM", user.Country)
}

// TestRegisterUserUnknownCountry: нераспознанная страна не блокирует
// регистрацию, пользователь уходит в дефолтный регион
func TestRegisterUserUnknownCountry(t *testing.T) {
	setupTestDB(t)
	us := NewUserService()
	ctx := context.Background()

	userID, err := us.RegisterUser(ctx, fakeUser("WAKANDA"))
	require.NoError(t, err)

	user, err := us.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, Router.DefaultSearchShard().ShardID, user.ShardID)
}

func TestRegisterUserDuplicateNickname(t *testing.T) {
	setupTestDB(t)
	us := NewUserService()
	ctx := context.Background()

	user := fakeUser("GERMANY")
	_, err := us.RegisterUser(ctx, user)
	require.NoError(t, err)

	dup := fakeUser("FRANCE")
	dup.Nickname = user.Nickname
	_, err = us.RegisterUser(ctx, dup)
	require.Error(t, err)
}

func TestChangeUserCountryMigrates(t *testing.T) {
	setupTestDB(t)
	us := NewUserService()
	ctx := context.Background()

	userID, err := us.RegisterUser(ctx, fakeUser("VIETNAM"))
	require.NoError(t, err)

	newShardID, err := us.ChangeUserCountry(ctx, userID, "GERMANY")
	require.NoError(t, err)
	assert.Equal(t, "eu", newShardID)

	user, err := us.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "eu", user.ShardID)
	assert.Equal(t, "GERMANY", user.Country)
}

// TestChangeUserCountrySameShard: переезд внутри региона не меняет shard_id
func TestChangeUserCountrySameShard(t *testing.T) {
	setupTestDB(t)
	us := NewUserService()
	ctx := context.Background()

	userID, err := us.RegisterUser(ctx, fakeUser("VIETNAM"))
	require.NoError(t, err)

	newShardID, err := us.ChangeUserCountry(ctx, userID, "SINGAPORE")
	require.NoError(t, err)
	assert.Equal(t, "sea", newShardID)

	user, err := us.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "sea", user.ShardID)
	assert.Equal(t, "SINGAPORE", user.Country)
}

func TestChangeUserCountryUnknownUser(t *testing.T) {
	setupTestDB(t)
	us := NewUserService()

	_, err := us.ChangeUserCountry(context.Background(), 100500, "GERMANY")
	require.Error(t, err)
}

func TestSearchUsersScopedToShard(t *testing.T) {
	setupTestDB(t)
	us := NewUserService()
	ctx := context.Background()

	// Два пользователя с одинаковым именем в разных регионах
	vn := fakeUser("VIETNAM")
	vn.FirstName = "Linh"
	_, err := us.RegisterUser(ctx, vn)
	require.NoError(t, err)

	de := fakeUser("GERMANY")
	de.FirstName = "Linh"
	_, err = us.RegisterUser(ctx, de)
	require.NoError(t, err)

	// Поиск по стране видит только свой шард
	found, err := us.SearchUsers(ctx, "Linh", "", "DE", 50, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "eu", found[0].ShardID)

	// Поиск без страны уходит в дефолтный регион
	found, err = us.SearchUsers(ctx, "Linh", "", "", 50, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "sea", found[0].ShardID)
}

func TestSearchUsersPagination(t *testing.T) {
	setupTestDB(t)
	us := NewUserService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		user := fakeUser("THAILAND")
		user.FirstName = "Somchai"
		_, err := us.RegisterUser(ctx, user)
		require.NoError(t, err)
	}

	page1, err := us.SearchUsers(ctx, "Somchai", "", "TH", 3, 0)
	require.NoError(t, err)
	assert.Len(t, page1, 3)

	page2, err := us.SearchUsers(ctx, "Somchai", "", "TH", 3, 3)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}
