package forms_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/tastebook/forms"
	"github.com/ray-remotestate/tastebook/models"
)

func TestRatingRoundTrip(t *testing.T) {
	n, ok := forms.RatingValue("⭐⭐⭐")
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, "⭐⭐⭐", forms.RatingDefault(n))
}

func TestRatingValueRejectsInvalidChoices(t *testing.T) {
	for _, choice := range []string{"", "junk", "⭐⭐⭐⭐⭐⭐", "3", "⭐x⭐"} {
		_, ok := forms.RatingValue(choice)
		assert.False(t, ok, "choice %q", choice)
	}
}

func TestRatingChoices(t *testing.T) {
	choices := forms.RatingChoices()
	require.Len(t, choices, 5)
	assert.Equal(t, "⭐", choices[0])
	assert.Equal(t, "⭐⭐⭐⭐⭐", choices[4])
}

func TestEditRestaurantFormPrepopulates(t *testing.T) {
	form := forms.EditRestaurantForm(&models.Restaurant{
		Name:        "Cafe X",
		FavItem:     "Ramen",
		AvePrice:    "$15",
		RateFood:    3,
		RateService: 5,
		RateVibe:    1,
		Location:    "https://maps.example/x",
	})

	assert.Equal(t, "Cafe X", form.Value("name"))
	assert.Equal(t, "$15", form.Value("ave_price"))
	assert.Equal(t, "⭐⭐⭐", form.Value("rate_food"))
	assert.Equal(t, "⭐⭐⭐⭐⭐", form.Value("rate_service"))
	assert.Equal(t, "⭐", form.Value("rate_vibe"))
	assert.Equal(t, "Save", form.Submit)
}

func TestValidateRequiredFields(t *testing.T) {
	form := forms.NewRestaurantForm()
	req := httptest.NewRequest("POST", "/add", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form.Bind(req)

	assert.False(t, form.Validate())
	assert.NotEmpty(t, form.Field("name").Error)
	assert.NotEmpty(t, form.Field("rate_food").Error)
	// optional fields stay clean
	assert.Empty(t, form.Field("fav_item").Error)
	assert.Empty(t, form.Field("location").Error)
	assert.Error(t, form.Err())
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	vals := url.Values{
		"name":         {"Cafe X"},
		"ave_price":    {"15.50"},
		"rate_food":    {"⭐⭐⭐"},
		"rate_service": {"⭐⭐⭐⭐"},
		"rate_vibe":    {"⭐⭐"},
	}
	form := forms.NewRestaurantForm()
	req := httptest.NewRequest("POST", "/add", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form.Bind(req)

	assert.True(t, form.Validate())
	assert.NoError(t, form.Err())
	assert.Equal(t, "Cafe X", form.Value("name"))
}

func TestValidateRejectsForgedRating(t *testing.T) {
	vals := url.Values{
		"name":         {"Cafe X"},
		"ave_price":    {"10"},
		"rate_food":    {"six stars"},
		"rate_service": {"⭐"},
		"rate_vibe":    {"⭐"},
	}
	form := forms.NewRestaurantForm()
	req := httptest.NewRequest("POST", "/add", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	form.Bind(req)

	assert.False(t, form.Validate())
	assert.NotEmpty(t, form.Field("rate_food").Error)
}
