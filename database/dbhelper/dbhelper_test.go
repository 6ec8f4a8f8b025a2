package dbhelper_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/tastebook/database"
	"github.com/ray-remotestate/tastebook/database/dbhelper"
	"github.com/ray-remotestate/tastebook/models"
)

const testSchema = `
CREATE TABLE restaurants (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    fav_item TEXT NOT NULL DEFAULT '',
    ave_price TEXT NOT NULL DEFAULT '',
    rate_food INTEGER NOT NULL,
    rate_service INTEGER NOT NULL,
    rate_vibe INTEGER NOT NULL,
    location TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    restaurant_id INTEGER NOT NULL REFERENCES restaurants (id),
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// setupTestDB swaps the shared pool for an in-memory sqlite database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// :memory: databases are per-connection
	db.SetMaxOpenConns(1)

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	database.Tastebook = db
	t.Cleanup(func() { db.Close() })
}

func createRestaurant(t *testing.T, name string) int64 {
	t.Helper()

	var id int64
	err := database.Tx(func(tx *sql.Tx) error {
		var err error
		id, err = dbhelper.CreateRestaurant(tx, &models.Restaurant{
			Name:        name,
			FavItem:     "Ramen",
			AvePrice:    "$15",
			RateFood:    3,
			RateService: 4,
			RateVibe:    5,
		})
		return err
	})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))
	return id
}

func createNote(t *testing.T, restaurantID int64, body string) int64 {
	t.Helper()

	var id int64
	err := database.Tx(func(tx *sql.Tx) error {
		var err error
		id, err = dbhelper.CreateNote(tx, restaurantID, body)
		return err
	})
	require.NoError(t, err)
	return id
}

func TestCreateAndGetRestaurant(t *testing.T) {
	setupTestDB(t)

	id := createRestaurant(t, "Cafe X")

	got, err := dbhelper.GetRestaurantByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Cafe X", got.Name)
	assert.Equal(t, "$15", got.AvePrice)
	assert.Equal(t, 3, got.RateFood)
	assert.Equal(t, 4, got.RateService)
	assert.Equal(t, 5, got.RateVibe)
}

func TestGetRestaurantByIDNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := dbhelper.GetRestaurantByID(42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDuplicateNameIsUniqueViolation(t *testing.T) {
	setupTestDB(t)

	createRestaurant(t, "Cafe X")

	err := database.Tx(func(tx *sql.Tx) error {
		_, err := dbhelper.CreateRestaurant(tx, &models.Restaurant{
			Name: "Cafe X", RateFood: 1, RateService: 1, RateVibe: 1,
		})
		return err
	})
	require.Error(t, err)
	assert.True(t, dbhelper.IsUniqueViolation(err))

	// the first record is unaffected
	restaurants, err := dbhelper.ListRestaurants()
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "$15", restaurants[0].AvePrice)
}

func TestUpdateRestaurant(t *testing.T) {
	setupTestDB(t)

	id := createRestaurant(t, "Cafe X")

	err := database.Tx(func(tx *sql.Tx) error {
		return dbhelper.UpdateRestaurant(tx, &models.Restaurant{
			ID:          id,
			Name:        "Cafe Y",
			FavItem:     "Udon",
			AvePrice:    "$20",
			RateFood:    5,
			RateService: 5,
			RateVibe:    5,
		})
	})
	require.NoError(t, err)

	got, err := dbhelper.GetRestaurantByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Cafe Y", got.Name)
	assert.Equal(t, "$20", got.AvePrice)
}

func TestUpdateRestaurantNotFound(t *testing.T) {
	setupTestDB(t)

	err := database.Tx(func(tx *sql.Tx) error {
		return dbhelper.UpdateRestaurant(tx, &models.Restaurant{
			ID: 42, Name: "Ghost", RateFood: 1, RateService: 1, RateVibe: 1,
		})
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteRestaurantRemovesAllNotes(t *testing.T) {
	setupTestDB(t)

	id := createRestaurant(t, "Cafe X")
	other := createRestaurant(t, "Cafe Y")
	for _, body := range []string{"great ramen", "crowded on fridays", "cash only"} {
		createNote(t, id, body)
	}
	keep := createNote(t, other, "unrelated")

	err := database.Tx(func(tx *sql.Tx) error {
		if err := dbhelper.DeleteNotesByRestaurant(tx, id); err != nil {
			return err
		}
		return dbhelper.DeleteRestaurant(tx, id)
	})
	require.NoError(t, err)

	_, err = dbhelper.GetRestaurantByID(id)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	notes, err := dbhelper.ListNotesByRestaurant(id)
	require.NoError(t, err)
	assert.Empty(t, notes)

	// the other restaurant's note survives
	otherNotes, err := dbhelper.ListNotesByRestaurant(other)
	require.NoError(t, err)
	require.Len(t, otherNotes, 1)
	assert.Equal(t, keep, otherNotes[0].ID)
}

func TestDeleteSingleNotePreservesSiblingOrder(t *testing.T) {
	setupTestDB(t)

	id := createRestaurant(t, "Cafe X")
	first := createNote(t, id, "first")
	middle := createNote(t, id, "middle")
	last := createNote(t, id, "last")

	err := database.Tx(func(tx *sql.Tx) error {
		return dbhelper.DeleteNote(tx, id, middle)
	})
	require.NoError(t, err)

	notes, err := dbhelper.ListNotesByRestaurant(id)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first, notes[0].ID)
	assert.Equal(t, "first", notes[0].Body)
	assert.Equal(t, last, notes[1].ID)
	assert.Equal(t, "last", notes[1].Body)
}

func TestNoteLookupScopedToRestaurant(t *testing.T) {
	setupTestDB(t)

	a := createRestaurant(t, "Cafe A")
	b := createRestaurant(t, "Cafe B")
	noteID := createNote(t, a, "belongs to a")

	_, err := dbhelper.GetNoteByID(b, noteID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	err = database.Tx(func(tx *sql.Tx) error {
		return dbhelper.DeleteNote(tx, b, noteID)
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// still there for its real owner
	note, err := dbhelper.GetNoteByID(a, noteID)
	require.NoError(t, err)
	assert.Equal(t, "belongs to a", note.Body)
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	setupTestDB(t)

	err := database.Tx(func(tx *sql.Tx) error {
		return dbhelper.DeleteRestaurant(tx, 42)
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
