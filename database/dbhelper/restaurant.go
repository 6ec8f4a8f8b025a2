package dbhelper

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/ray-remotestate/tastebook/database"
	"github.com/ray-remotestate/tastebook/models"
)

func CreateRestaurant(tx *sql.Tx, r *models.Restaurant) (int64, error) {
	var id int64
	err := tx.QueryRow(`
		INSERT INTO restaurants (name, fav_item, ave_price, rate_food, rate_service, rate_vibe, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		r.Name, r.FavItem, r.AvePrice, r.RateFood, r.RateService, r.RateVibe, r.Location).
		Scan(&id)
	return id, err
}

func GetRestaurantByID(id int64) (*models.Restaurant, error) {
	r := &models.Restaurant{}
	err := database.Tastebook.QueryRow(`
		SELECT id, name, fav_item, ave_price, rate_food, rate_service, rate_vibe, location, created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&r.ID, &r.Name, &r.FavItem, &r.AvePrice, &r.RateFood, &r.RateService, &r.RateVibe, &r.Location, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func ListRestaurants() ([]models.Restaurant, error) {
	rows, err := database.Tastebook.Query(`
		SELECT id, name, fav_item, ave_price, rate_food, rate_service, rate_vibe, location, created_at
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.FavItem, &r.AvePrice, &r.RateFood, &r.RateService, &r.RateVibe, &r.Location, &r.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func UpdateRestaurant(tx *sql.Tx, r *models.Restaurant) error {
	res, err := tx.Exec(`
		UPDATE restaurants
		SET name = $1, fav_item = $2, ave_price = $3, rate_food = $4, rate_service = $5, rate_vibe = $6, location = $7
		WHERE id = $8`,
		r.Name, r.FavItem, r.AvePrice, r.RateFood, r.RateService, r.RateVibe, r.Location, r.ID)
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

func DeleteRestaurant(tx *sql.Tx, id int64) error {
	res, err := tx.Exec(`DELETE FROM restaurants WHERE id = $1`, id)
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

// IsUniqueViolation reports whether err is a unique-constraint failure.
// The string check covers the sqlite driver used by tests.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
