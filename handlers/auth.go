package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/tastebook/config"
	"github.com/ray-remotestate/tastebook/forms"
	"github.com/ray-remotestate/tastebook/middlewares"
	"github.com/ray-remotestate/tastebook/utils"
)

func Login(w http.ResponseWriter, r *http.Request) {
	form := forms.LoginForm()

	if r.Method == http.MethodPost {
		form.Bind(r)
		if form.Validate() {
			if config.FirstRun() {
				form.SetError("password", "No admin password configured yet.")
			} else if !utils.CheckPassword(config.AdminPasswordHash, form.Value("password")) {
				form.SetError("password", "Incorrect password.")
			} else {
				if err := middlewares.EstablishAdminSession(w, r); err != nil {
					logrus.WithError(err).Error("failed to establish session")
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				middlewares.AddFlash(w, r, "Logged in.")
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
		}
	}

	render(w, r, "login.html", map[string]interface{}{
		"Title": "Log In",
		"Form":  form,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	if err := middlewares.ClearSession(w, r); err != nil {
		logrus.WithError(err).Error("failed to clear session")
	}
	middlewares.AddFlash(w, r, "Logged out.")
	http.Redirect(w, r, "/", http.StatusFound)
}
