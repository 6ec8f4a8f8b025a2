package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/tastebook/database"
	"github.com/ray-remotestate/tastebook/database/dbhelper"
	"github.com/ray-remotestate/tastebook/forms"
	"github.com/ray-remotestate/tastebook/models"
)

// restaurantFromForm builds the record from a validated form. The price
// has already been normalized by the caller.
func restaurantFromForm(form *forms.Form, avePrice string) *models.Restaurant {
	rateFood, _ := forms.RatingValue(form.Value("rate_food"))
	rateService, _ := forms.RatingValue(form.Value("rate_service"))
	rateVibe, _ := forms.RatingValue(form.Value("rate_vibe"))
	return &models.Restaurant{
		Name:        form.Value("name"),
		FavItem:     form.Value("fav_item"),
		AvePrice:    avePrice,
		RateFood:    rateFood,
		RateService: rateService,
		RateVibe:    rateVibe,
		Location:    form.Value("location"),
	}
}

// validatePrice normalizes the price field, recording the field error
// the user sees when the input has no digits.
func validatePrice(form *forms.Form) (string, bool) {
	avePrice, err := forms.NormalizePrice(form.Value("ave_price"))
	if err != nil {
		form.SetError("ave_price", fmt.Sprintf("Invalid input '%s' for 'Average Price'", form.Value("ave_price")))
		return "", false
	}
	return avePrice, true
}

func AddRestaurant(w http.ResponseWriter, r *http.Request) {
	form := forms.NewRestaurantForm()

	if r.Method == http.MethodPost {
		form.Bind(r)
		if form.Validate() {
			if avePrice, ok := validatePrice(form); ok {
				restaurant := restaurantFromForm(form, avePrice)
				txErr := database.Tx(func(tx *sql.Tx) error {
					_, err := dbhelper.CreateRestaurant(tx, restaurant)
					return err
				})
				switch {
				case txErr == nil:
					http.Redirect(w, r, "/", http.StatusFound)
					return
				case dbhelper.IsUniqueViolation(txErr):
					form.SetError("name", "A restaurant with this name already exists.")
				default:
					logrus.WithError(txErr).Error("failed to create restaurant")
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
			}
		}
	}

	render(w, r, "add.html", map[string]interface{}{
		"Title": "Add a Restaurant",
		"Form":  form,
	})
}

func ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := dbhelper.ListRestaurants()
	if err != nil {
		logrus.WithError(err).Error("failed to list restaurants")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, r, "restaurants.html", map[string]interface{}{
		"Title":       "Restaurants",
		"Restaurants": restaurants,
	})
}

func RestaurantInfo(w http.ResponseWriter, r *http.Request) {
	renderRestaurantInfo(w, r, forms.NewNoteForm())
}

func renderRestaurantInfo(w http.ResponseWriter, r *http.Request, form *forms.Form) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	restaurant, err := dbhelper.GetRestaurantByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to load restaurant")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	notes, err := dbhelper.ListNotesByRestaurant(id)
	if err != nil {
		logrus.WithError(err).Error("failed to list notes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	render(w, r, "restaurant_info.html", map[string]interface{}{
		"Title":      restaurant.Name,
		"Restaurant": restaurant,
		"Notes":      notes,
		"Form":       form,
	})
}

func EditRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	restaurant, err := dbhelper.GetRestaurantByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to load restaurant")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	form := forms.EditRestaurantForm(restaurant)

	if r.Method == http.MethodPost {
		form.Bind(r)
		if form.Validate() {
			if avePrice, ok := validatePrice(form); ok {
				updated := restaurantFromForm(form, avePrice)
				updated.ID = id
				txErr := database.Tx(func(tx *sql.Tx) error {
					return dbhelper.UpdateRestaurant(tx, updated)
				})
				switch {
				case txErr == nil:
					http.Redirect(w, r, fmt.Sprintf("/restaurant/%d", id), http.StatusFound)
					return
				case errors.Is(txErr, sql.ErrNoRows):
					http.NotFound(w, r)
					return
				case dbhelper.IsUniqueViolation(txErr):
					form.SetError("name", "A restaurant with this name already exists.")
				default:
					logrus.WithError(txErr).Error("failed to update restaurant")
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
			}
		}
	}

	render(w, r, "edit.html", map[string]interface{}{
		"Title":      "Edit " + restaurant.Name,
		"Restaurant": restaurant,
		"Form":       form,
	})
}

func ConfirmDeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	restaurant, err := dbhelper.GetRestaurantByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to load restaurant")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	render(w, r, "delete_confirm.html", map[string]interface{}{
		"Title":      "Delete " + restaurant.Name,
		"Restaurant": restaurant,
	})
}

// DeleteRestaurant removes the restaurant and every note it owns in one
// transaction, notes first.
func DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	txErr := database.Tx(func(tx *sql.Tx) error {
		if err := dbhelper.DeleteNotesByRestaurant(tx, id); err != nil {
			return err
		}
		return dbhelper.DeleteRestaurant(tx, id)
	})
	if errors.Is(txErr, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	} else if txErr != nil {
		logrus.WithError(txErr).Error("failed to delete restaurant")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/restaurants", http.StatusFound)
}
