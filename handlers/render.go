package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/tastebook/middlewares"
	"github.com/ray-remotestate/tastebook/templates"
)

func render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["IsAdmin"] = middlewares.IsAdmin(r)
	data["Flashes"] = middlewares.Flashes(w, r)
	data["CSRFField"] = csrf.TemplateField(r)
	if err := templates.Render(w, name, data); err != nil {
		logrus.WithError(err).Errorf("failed to render %s", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// pathID pulls an integer path variable; a malformed value is treated
// the same as a missing record.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
