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
)

// AddNote handles the note form posted from a restaurant's detail page.
func AddNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := dbhelper.GetRestaurantByID(id); errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to load restaurant")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	form := forms.NewNoteForm()
	form.Bind(r)
	if !form.Validate() {
		renderRestaurantInfo(w, r, form)
		return
	}

	txErr := database.Tx(func(tx *sql.Tx) error {
		_, err := dbhelper.CreateNote(tx, id, form.Value("note"))
		return err
	})
	if txErr != nil {
		logrus.WithError(txErr).Error("failed to create note")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/restaurant/%d", id), http.StatusFound)
}

func EditNote(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(r, "restaurant_id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	noteID, ok := pathID(r, "note_id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	restaurant, err := dbhelper.GetRestaurantByID(restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to load restaurant")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	note, err := dbhelper.GetNoteByID(restaurantID, noteID)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to load note")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	form := forms.EditNoteForm(note.Body)

	if r.Method == http.MethodPost {
		form.Bind(r)
		if form.Validate() {
			txErr := database.Tx(func(tx *sql.Tx) error {
				return dbhelper.UpdateNote(tx, restaurantID, noteID, form.Value("note"))
			})
			switch {
			case txErr == nil:
				http.Redirect(w, r, fmt.Sprintf("/restaurant/%d", restaurantID), http.StatusFound)
				return
			case errors.Is(txErr, sql.ErrNoRows):
				http.NotFound(w, r)
				return
			default:
				logrus.WithError(txErr).Error("failed to update note")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
		}
	}

	render(w, r, "edit_note.html", map[string]interface{}{
		"Title":      "Edit Note",
		"Restaurant": restaurant,
		"Note":       note,
		"Form":       form,
	})
}

// DeleteNote removes exactly one note and returns to the parent's
// detail view. Sibling notes are untouched.
func DeleteNote(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := pathID(r, "restaurant_id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	noteID, ok := pathID(r, "note_id")
	if !ok {
		http.NotFound(w, r)
		return
	}

	txErr := database.Tx(func(tx *sql.Tx) error {
		return dbhelper.DeleteNote(tx, restaurantID, noteID)
	})
	if errors.Is(txErr, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	} else if txErr != nil {
		logrus.WithError(txErr).Error("failed to delete note")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/restaurant/%d", restaurantID), http.StatusFound)
}
