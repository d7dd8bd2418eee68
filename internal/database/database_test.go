package database_test

import (
	"os"
	"testing"

	"offerhub/internal/config"
	"offerhub/internal/database"
	"offerhub/internal/models"
	"offerhub/internal/repositories"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open("mysql", "dsn")
	assert.Error(t, err)
}

func TestOpen_MigratesAndPings(t *testing.T) {
	db, err := database.Open(config.DriverSQLite, database.MemoryDSN())
	require.NoError(t, err)

	assert.NoError(t, database.Ping(db))
	for _, table := range []string{"users", "access_tokens", "offers", "offer_user"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	require.NoError(t, database.Close(db))
	assert.Error(t, database.Ping(db))
}

func TestSeed(t *testing.T) {
	db, err := database.Open(config.DriverSQLite, database.MemoryDSN())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	users := repositories.NewGORMUserRepository(db)
	offers := repositories.NewGORMOfferRepository(db)

	require.NoError(t, database.Seed(users, offers))

	all, total, err := offers.GetAll(models.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	for _, offer := range all {
		assert.Len(t, offer.Users, 3, offer.Name)
	}

	seeded, err := users.GetByEmail("seed.user1@offerhub.local")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seeded.Password), []byte("password")))

	// Second run is a no-op.
	require.NoError(t, database.Seed(users, offers))
	_, userTotal, err := users.GetAll(models.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 15, userTotal)
}
