package templates

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/ray-remotestate/tastebook/forms"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"stars": forms.RatingDefault,
}).ParseFS(files, "*.html"))

// Render executes into a buffer first so a template failure never sends
// a half-written page.
func Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
