package models

import (
	"time"
)

type Restaurant struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	FavItem     string    `db:"fav_item" json:"fav_item"`
	AvePrice    string    `db:"ave_price" json:"ave_price"`
	RateFood    int       `db:"rate_food" json:"rate_food"`
	RateService int       `db:"rate_service" json:"rate_service"`
	RateVibe    int       `db:"rate_vibe" json:"rate_vibe"`
	Location    string    `db:"location" json:"location"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Note struct {
	ID           int64     `db:"id" json:"id"`
	RestaurantID int64     `db:"restaurant_id" json:"restaurant_id"`
	Body         string    `db:"body" json:"body"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
