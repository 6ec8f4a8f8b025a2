package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/tastebook/config"
	"github.com/ray-remotestate/tastebook/forms"
	"github.com/ray-remotestate/tastebook/utils"
)

func Home(w http.ResponseWriter, r *http.Request) {
	if config.FirstRun() {
		render(w, r, "setup.html", map[string]interface{}{
			"Title": "Setup",
			"Form":  forms.SetupForm(),
		})
		return
	}
	render(w, r, "index.html", map[string]interface{}{})
}

// SetupAdmin handles the one-time first-run password submission. Once a
// hash is configured the route is closed off.
func SetupAdmin(w http.ResponseWriter, r *http.Request) {
	if !config.FirstRun() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	form := forms.SetupForm()
	form.Bind(r)
	if !form.Validate() {
		render(w, r, "setup.html", map[string]interface{}{
			"Title": "Setup",
			"Form":  form,
		})
		return
	}

	hash, err := utils.HashPassword(form.Value("password"))
	if err != nil {
		logrus.WithError(err).Error("failed to hash admin password")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if err := config.PersistAdminPasswordHash(hash); err != nil {
		logrus.WithError(err).Error("failed to persist admin password hash")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	logrus.Println("admin password configured, restart required")
	render(w, r, "setup_done.html", map[string]interface{}{"Title": "Setup"})
}
