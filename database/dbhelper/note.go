package dbhelper

import (
	"database/sql"

	"github.com/ray-remotestate/tastebook/database"
	"github.com/ray-remotestate/tastebook/models"
)

func CreateNote(tx *sql.Tx, restaurantID int64, body string) (int64, error) {
	var id int64
	err := tx.QueryRow(`
		INSERT INTO notes (restaurant_id, body)
		VALUES ($1, $2)
		RETURNING id`, restaurantID, body).
		Scan(&id)
	return id, err
}

func GetNoteByID(restaurantID, noteID int64) (*models.Note, error) {
	n := &models.Note{}
	err := database.Tastebook.QueryRow(`
		SELECT id, restaurant_id, body, created_at
		FROM notes
		WHERE restaurant_id = $1 AND id = $2`, restaurantID, noteID).
		Scan(&n.ID, &n.RestaurantID, &n.Body, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func ListNotesByRestaurant(restaurantID int64) ([]models.Note, error) {
	rows, err := database.Tastebook.Query(`
		SELECT id, restaurant_id, body, created_at
		FROM notes
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.RestaurantID, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func UpdateNote(tx *sql.Tx, restaurantID, noteID int64, body string) error {
	res, err := tx.Exec(`
		UPDATE notes
		SET body = $1
		WHERE restaurant_id = $2 AND id = $3`, body, restaurantID, noteID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteNote(tx *sql.Tx, restaurantID, noteID int64) error {
	res, err := tx.Exec(`DELETE FROM notes WHERE restaurant_id = $1 AND id = $2`, restaurantID, noteID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteNotesByRestaurant removes every note owned by the restaurant.
// Called inside the restaurant-delete transaction before the parent row
// goes away; the schema does not rely on ON DELETE CASCADE.
func DeleteNotesByRestaurant(tx *sql.Tx, restaurantID int64) error {
	_, err := tx.Exec(`DELETE FROM notes WHERE restaurant_id = $1`, restaurantID)
	return err
}
