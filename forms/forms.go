package forms

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/ray-remotestate/tastebook/models"
)

// RatingGlyph is the star symbol used for rating choices. Ratings are
// stored as the rune count of the chosen string.
const RatingGlyph = "⭐"

const maxRating = 5

func RatingChoices() []string {
	choices := make([]string, 0, maxRating)
	for i := 1; i <= maxRating; i++ {
		choices = append(choices, strings.Repeat(RatingGlyph, i))
	}
	return choices
}

// RatingValue maps a submitted rating choice back to its integer value.
func RatingValue(choice string) (int, bool) {
	n := utf8.RuneCountInString(choice)
	if n < 1 || n > maxRating || choice != strings.Repeat(RatingGlyph, n) {
		return 0, false
	}
	return n, true
}

func RatingDefault(n int) string {
	return strings.Repeat(RatingGlyph, n)
}

type Field struct {
	Name     string
	Label    string
	Type     string // input type, defaults to "text" in the template
	Value    string
	Required bool
	Choices  []string // non-nil renders a select
	TextArea bool
	Error    string
}

type Form struct {
	Fields []*Field
	Submit string
}

func (f *Form) Field(name string) *Field {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld
		}
	}
	return nil
}

func (f *Form) Value(name string) string {
	if fld := f.Field(name); fld != nil {
		return fld.Value
	}
	return ""
}

func (f *Form) SetError(name, msg string) {
	if fld := f.Field(name); fld != nil {
		fld.Error = msg
	}
}

// Bind fills every field value from the POST body.
func (f *Form) Bind(r *http.Request) {
	for _, fld := range f.Fields {
		fld.Value = strings.TrimSpace(r.PostFormValue(fld.Name))
	}
}

// Validate checks requiredness and rating choices, recording field-level
// errors. Returns true when the form is acceptable.
func (f *Form) Validate() bool {
	ok := true
	for _, fld := range f.Fields {
		fld.Error = ""
		if fld.Required && fld.Value == "" {
			fld.Error = "This field is required."
			ok = false
			continue
		}
		if fld.Choices != nil && fld.Value != "" {
			if _, valid := RatingValue(fld.Value); !valid {
				fld.Error = "Not a valid choice."
				ok = false
			}
		}
	}
	return ok
}

// Err aggregates field errors for server-side logging.
func (f *Form) Err() error {
	var errs *multierror.Error
	for _, fld := range f.Fields {
		if fld.Error != "" {
			errs = multierror.Append(errs, fmt.Errorf("%s: %s", fld.Name, fld.Error))
		}
	}
	return errs.ErrorOrNil()
}

func restaurantFields() []*Field {
	return []*Field{
		{Name: "name", Label: "Restaurant Name", Required: true},
		{Name: "fav_item", Label: "Favorite Item Ordered"},
		{Name: "ave_price", Label: "Average Price for One Person", Required: true},
		{Name: "rate_food", Label: "Rate the Food", Required: true, Choices: RatingChoices()},
		{Name: "rate_service", Label: "Rate the Service", Required: true, Choices: RatingChoices()},
		{Name: "rate_vibe", Label: "Rate the Vibe", Required: true, Choices: RatingChoices()},
		{Name: "location", Label: "Google Maps URL"},
	}
}

func NewRestaurantForm() *Form {
	return &Form{Fields: restaurantFields(), Submit: "Add"}
}

// EditRestaurantForm pre-populates every field from the existing record;
// rating defaults are rebuilt as glyph strings.
func EditRestaurantForm(r *models.Restaurant) *Form {
	f := &Form{Fields: restaurantFields(), Submit: "Save"}
	f.Field("name").Value = r.Name
	f.Field("fav_item").Value = r.FavItem
	f.Field("ave_price").Value = r.AvePrice
	f.Field("rate_food").Value = RatingDefault(r.RateFood)
	f.Field("rate_service").Value = RatingDefault(r.RateService)
	f.Field("rate_vibe").Value = RatingDefault(r.RateVibe)
	f.Field("location").Value = r.Location
	return f
}

func NewNoteForm() *Form {
	return &Form{
		Fields: []*Field{{Name: "note", Label: "Add Bullet Notes", Required: true, TextArea: true}},
		Submit: "Add",
	}
}

func EditNoteForm(body string) *Form {
	return &Form{
		Fields: []*Field{{Name: "note", Label: "Edit Note", Required: true, TextArea: true, Value: body}},
		Submit: "Save",
	}
}

func LoginForm() *Form {
	return &Form{
		Fields: []*Field{{Name: "password", Label: "Admin Password", Type: "password", Required: true}},
		Submit: "Log In",
	}
}

func SetupForm() *Form {
	return &Form{
		Fields: []*Field{{Name: "password", Label: "New Admin Password", Type: "password", Required: true}},
		Submit: "Set Password",
	}
}
