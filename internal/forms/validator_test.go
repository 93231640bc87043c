package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nebulanotes/internal/models"
	"nebulanotes/internal/services"
)

func bindForm(t *testing.T, values url.Values, dst interface{}) *services.ValidationError {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req

	return Bind(c, dst)
}

func TestBindTrimsAndValidatesGalaxy(t *testing.T) {
	var f GalaxyForm
	ve := bindForm(t, url.Values{
		"name":        {"  Andromeda  "},
		"type":        {"Spiral"},
		"description": {" nearby "},
	}, &f)

	require.Nil(t, ve)
	assert.Equal(t, "Andromeda", f.Name)
	assert.Equal(t, "nearby", f.Description)
	assert.Equal(t, services.GalaxyInput{Name: "Andromeda", Type: "Spiral", Description: "nearby"}, f.Input())
}

func TestBindGalaxyErrors(t *testing.T) {
	var f GalaxyForm
	ve := bindForm(t, url.Values{
		"name":      {"   "},
		"type":      {"Ring"},
		"image_url": {"not a url"},
	}, &f)

	require.NotNil(t, ve)
	assert.Equal(t, []string{services.MsgRequired}, ve.Fields["name"])
	assert.Equal(t, []string{"Select a valid choice. Ring is not one of the available choices."}, ve.Fields["type"])
	assert.Equal(t, []string{"Enter a valid URL."}, ve.Fields["image_url"])
}

func TestBindNameTooLong(t *testing.T) {
	var f ObjectTypeForm
	ve := bindForm(t, url.Values{"name": {strings.Repeat("x", 101)}}, &f)

	require.NotNil(t, ve)
	assert.Equal(t, []string{"Ensure this value has at most 100 characters (it has 101)."}, ve.Fields["name"])
}

func TestBindAstronomicalObject(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		errors map[string]string
	}{
		{
			name:   "valid",
			values: url.Values{"name": {"Sirius"}, "type": {"1"}, "distance_from_earth": {"8.6"}, "discovery_year": {"1844"}},
		},
		{
			name:   "exponent distance",
			values: url.Values{"name": {"Andromeda"}, "type": {"2"}, "distance_from_earth": {"2.5e6"}},
		},
		{
			name:   "leading dot distance",
			values: url.Values{"name": {"Proxima"}, "type": {"1"}, "distance_from_earth": {".5"}},
		},
		{
			name:   "NaN distance",
			values: url.Values{"name": {"Sirius"}, "type": {"1"}, "distance_from_earth": {"NaN"}},
			errors: map[string]string{"distance_from_earth": "Enter a number."},
		},
		{
			name:   "infinite distance",
			values: url.Values{"name": {"Sirius"}, "type": {"1"}, "distance_from_earth": {"Inf"}},
			errors: map[string]string{"distance_from_earth": "Enter a number."},
		},
		{
			name:   "missing type and distance",
			values: url.Values{"name": {"Sirius"}},
			errors: map[string]string{"type": services.MsgRequired, "distance_from_earth": services.MsgRequired},
		},
		{
			name:   "bad choices and numbers",
			values: url.Values{"name": {"Sirius"}, "type": {"abc"}, "galaxy": {"0"}, "distance_from_earth": {"far"}, "discovery_year": {"1844.5"}},
			errors: map[string]string{
				"type":                services.MsgInvalidChoice,
				"galaxy":              services.MsgInvalidChoice,
				"distance_from_earth": "Enter a number.",
				"discovery_year":      "Enter a whole number.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f AstronomicalObjectForm
			ve := bindForm(t, tt.values, &f)
			if len(tt.errors) == 0 {
				require.Nil(t, ve)
				return
			}
			require.NotNil(t, ve)
			assert.Len(t, ve.Fields, len(tt.errors))
			for field, msg := range tt.errors {
				assert.Equal(t, []string{msg}, ve.Fields[field], field)
			}
		})
	}
}

func TestAstronomicalObjectFormInput(t *testing.T) {
	f := AstronomicalObjectForm{Name: "M31", Type: "2", Galaxy: "", DistanceFromEarth: "2537000", DiscoveryYear: "964"}
	in := f.Input()

	require.NotNil(t, in.TypeID)
	assert.Equal(t, int64(2), *in.TypeID)
	assert.Nil(t, in.GalaxyID)
	require.NotNil(t, in.DistanceFromEarth)
	assert.Equal(t, 2537000.0, *in.DistanceFromEarth)
	require.NotNil(t, in.DiscoveryYear)
	assert.Equal(t, 964, *in.DiscoveryYear)
}

func TestAstronomicalObjectFormExponentDistance(t *testing.T) {
	var f AstronomicalObjectForm
	ve := bindForm(t, url.Values{"name": {"M31"}, "type": {"2"}, "distance_from_earth": {"2.5e6"}}, &f)

	require.Nil(t, ve)
	in := f.Input()
	require.NotNil(t, in.DistanceFromEarth)
	assert.Equal(t, 2.5e6, *in.DistanceFromEarth)
}

func TestBindRegisterKeepsEmailAsTyped(t *testing.T) {
	var f RegisterForm
	ve := bindForm(t, url.Values{
		"username":         {"obrien"},
		"email":            {"o'brien@example.com"},
		"password":         {"secret"},
		"password_confirm": {"secret"},
	}, &f)

	require.Nil(t, ve)
	assert.Equal(t, "o'brien@example.com", f.Input().Email)
}

func TestBindEventRelatedObjects(t *testing.T) {
	var f EventForm
	ve := bindForm(t, url.Values{
		"name":            {"Lunar Eclipse"},
		"date":            {"2025-03-14"},
		"description":     {"Total eclipse"},
		"related_objects": {"3", " ", "3", "5"},
	}, &f)

	require.Nil(t, ve)
	in := f.Input()
	assert.Equal(t, []int64{3, 5}, in.RelatedObjectIDs)
	require.NotNil(t, in.Date)
	assert.Equal(t, "2025-03-14", in.Date.Format(models.DateLayout))
	assert.True(t, f.Selected(5))
	assert.False(t, f.Selected(4))
}

func TestBindEventErrors(t *testing.T) {
	var f EventForm
	ve := bindForm(t, url.Values{
		"name":            {"Eclipse"},
		"date":            {"14/03/2025"},
		"related_objects": {"x"},
	}, &f)

	require.NotNil(t, ve)
	assert.Equal(t, []string{"Enter a valid date."}, ve.Fields["date"])
	assert.Equal(t, []string{services.MsgRequired}, ve.Fields["description"])
	assert.Equal(t, []string{"Select a valid choice. x is not one of the available choices."}, ve.Fields["related_objects"])
}

func TestBindObservationDate(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	tests := []struct {
		name  string
		date  string
		error string
	}{
		{name: "datetime-local", date: "2025-05-31T22:15"},
		{name: "date only", date: "2025-05-31"},
		{name: "exactly now", date: "2025-06-01 12:00"},
		{name: "future", date: "2025-06-02T00:00", error: services.MsgFutureObservation},
		{name: "garbage", date: "yesterday", error: "Enter a valid date/time."},
		{name: "empty", date: "", error: services.MsgRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f ObservationForm
			ve := bindForm(t, url.Values{"observation_date": {tt.date}, "location": {"Backyard"}}, &f)
			if tt.error == "" {
				require.Nil(t, ve)
				require.NotNil(t, f.Input().ObservationDate)
				return
			}
			require.NotNil(t, ve)
			assert.Equal(t, []string{tt.error}, ve.Fields["observation_date"])
		})
	}
}

func TestObservationFormRoundTrip(t *testing.T) {
	objectID := int64(4)
	o := &models.Observation{
		AstronomicalObjectID: &objectID,
		ObservationDate:      time.Date(2024, 8, 12, 23, 30, 0, 0, time.Local),
		Location:             "Hill",
	}
	f := ObservationFormFrom(o)

	assert.Equal(t, "4", f.AstronomicalObject)
	assert.Empty(t, f.Event)
	assert.Equal(t, "2024-08-12T23:30", f.ObservationDate)

	in := f.Input()
	require.NotNil(t, in.ObservationDate)
	assert.True(t, in.ObservationDate.Equal(o.ObservationDate))
	assert.Equal(t, &objectID, in.AstronomicalObjectID)
	assert.Nil(t, in.EventID)
}

func TestBindRegisterPasswordsMustMatch(t *testing.T) {
	var f RegisterForm
	ve := bindForm(t, url.Values{
		"username":         {"vera"},
		"email":            {"vera@example.com"},
		"password":         {" secret "},
		"password_confirm": {"secret"},
	}, &f)

	require.NotNil(t, ve)
	assert.Equal(t, []string{services.MsgPasswordsMismatch}, ve.Fields["password_confirm"])
	assert.Equal(t, " secret ", f.Password)
}

func TestBindLoginRequiresBothFields(t *testing.T) {
	var f LoginForm
	ve := bindForm(t, url.Values{"next": {"/observations/list"}}, &f)

	require.NotNil(t, ve)
	assert.Equal(t, []string{services.MsgRequired}, ve.Fields["username"])
	assert.Equal(t, []string{services.MsgRequired}, ve.Fields["password"])
	assert.Equal(t, "/observations/list", f.Next)
}

func TestParseDateTime(t *testing.T) {
	got, ok := ParseDateTime("2024-01-02T03:04:05Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), got.UTC())

	got, ok = ParseDateTime(" 2024-01-02 03:04 ")
	require.True(t, ok)
	assert.Equal(t, time.Local, got.Location())

	_, ok = ParseDateTime("2024-13-01")
	assert.False(t, ok)
}
