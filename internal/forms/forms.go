package forms

import (
	"strconv"
	"time"

	"nebulanotes/internal/models"
	"nebulanotes/internal/services"
	"nebulanotes/internal/utils"
)

// Forms keep the raw submitted strings so a rejected form can be rendered
// back exactly as typed.

type GalaxyForm struct {
	Name        string `form:"name" json:"name" validate:"required,max=100"`
	Type        string `form:"type" json:"type" validate:"required,oneof=Spiral Elliptical Irregular Other"`
	Description string `form:"description" json:"description"`
	ImageURL    string `form:"image_url" json:"image_url" validate:"omitempty,url"`
}

func GalaxyFormFrom(g *models.Galaxy) GalaxyForm {
	return GalaxyForm{Name: g.Name, Type: g.Type, Description: g.Description, ImageURL: g.ImageURL}
}

func (f GalaxyForm) Input() services.GalaxyInput {
	return services.GalaxyInput{Name: f.Name, Type: f.Type, Description: f.Description, ImageURL: f.ImageURL}
}

type ObjectTypeForm struct {
	Name string `form:"name" json:"name" validate:"required,max=100"`
}

func ObjectTypeFormFrom(t *models.ObjectType) ObjectTypeForm {
	return ObjectTypeForm{Name: t.Name}
}

func (f ObjectTypeForm) Input() services.ObjectTypeInput {
	return services.ObjectTypeInput{Name: f.Name}
}

type AstronomicalObjectForm struct {
	Name              string `form:"name" json:"name" validate:"required,max=100"`
	Type              string `form:"type" json:"type" validate:"required,pk"`
	Galaxy            string `form:"galaxy" json:"galaxy" validate:"omitempty,pk"`
	DistanceFromEarth string `form:"distance_from_earth" json:"distance_from_earth" validate:"required,float"`
	DiscoveryYear     string `form:"discovery_year" json:"discovery_year" validate:"omitempty,wholenumber"`
	Description       string `form:"description" json:"description"`
	ImageURL          string `form:"image_url" json:"image_url" validate:"omitempty,url"`
}

func AstronomicalObjectFormFrom(o *models.AstronomicalObject) AstronomicalObjectForm {
	f := AstronomicalObjectForm{
		Name:              o.Name,
		Type:              formatID(o.TypeID),
		DistanceFromEarth: strconv.FormatFloat(o.DistanceFromEarth, 'f', -1, 64),
		Description:       o.Description,
		ImageURL:          o.ImageURL,
	}
	if o.GalaxyID != nil {
		f.Galaxy = formatID(*o.GalaxyID)
	}
	if o.DiscoveryYear != nil {
		f.DiscoveryYear = strconv.Itoa(*o.DiscoveryYear)
	}
	return f
}

// Input converts a validated form.
func (f AstronomicalObjectForm) Input() services.AstronomicalObjectInput {
	in := services.AstronomicalObjectInput{
		Name:        f.Name,
		TypeID:      optionalID(f.Type),
		GalaxyID:    optionalID(f.Galaxy),
		Description: f.Description,
		ImageURL:    f.ImageURL,
	}
	if d, err := strconv.ParseFloat(f.DistanceFromEarth, 64); err == nil {
		in.DistanceFromEarth = &d
	}
	if y, err := strconv.Atoi(f.DiscoveryYear); err == nil {
		in.DiscoveryYear = &y
	}
	return in
}

type EventForm struct {
	Name           string   `form:"name" json:"name" validate:"required,max=100"`
	Date           string   `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Description    string   `form:"description" json:"description" validate:"required"`
	RelatedObjects []string `form:"related_objects" json:"related_objects" validate:"dive,pk"`
}

func EventFormFrom(e *models.Event) EventForm {
	f := EventForm{Name: e.Name, Date: e.Date.Format(models.DateLayout), Description: e.Description}
	for _, id := range e.RelatedObjectIDs() {
		f.RelatedObjects = append(f.RelatedObjects, formatID(id))
	}
	return f
}

func (f EventForm) Input() services.EventInput {
	in := services.EventInput{Name: f.Name, Description: f.Description}
	if d, err := time.Parse(models.DateLayout, f.Date); err == nil {
		in.Date = &d
	}
	for _, raw := range f.RelatedObjects {
		if id, ok := utils.ParseID(raw); ok && !utils.Contains(in.RelatedObjectIDs, id) {
			in.RelatedObjectIDs = append(in.RelatedObjectIDs, id)
		}
	}
	return in
}

// Selected reports whether object id is ticked in the multi-select.
func (f EventForm) Selected(id int64) bool {
	return utils.Contains(f.RelatedObjects, formatID(id))
}

// ObservationForm has no owner field: the owner is the session user.
type ObservationForm struct {
	AstronomicalObject string `form:"astronomical_object" json:"astronomical_object" validate:"omitempty,pk"`
	Event              string `form:"event" json:"event" validate:"omitempty,pk"`
	ObservationDate    string `form:"observation_date" json:"observation_date" validate:"required,anydatetime,notfuture"`
	Location           string `form:"location" json:"location" validate:"max=255"`
	Notes              string `form:"notes" json:"notes"`
}

func ObservationFormFrom(o *models.Observation) ObservationForm {
	f := ObservationForm{
		ObservationDate: o.ObservationDate.In(time.Local).Format(DateTimeInputLayout),
		Location:        o.Location,
		Notes:           o.Notes,
	}
	if o.AstronomicalObjectID != nil {
		f.AstronomicalObject = formatID(*o.AstronomicalObjectID)
	}
	if o.EventID != nil {
		f.Event = formatID(*o.EventID)
	}
	return f
}

func (f ObservationForm) Input() services.ObservationInput {
	in := services.ObservationInput{
		AstronomicalObjectID: optionalID(f.AstronomicalObject),
		EventID:              optionalID(f.Event),
		Location:             f.Location,
		Notes:                f.Notes,
	}
	if t, ok := ParseDateTime(f.ObservationDate); ok {
		in.ObservationDate = &t
	}
	return in
}

type LoginForm struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"-" validate:"required" trim:"false"`
	Next     string `form:"next" json:"next"`
}

type RegisterForm struct {
	Username        string `form:"username" json:"username" validate:"required,max=150"`
	Email           string `form:"email" json:"email" validate:"required,email"`
	FirstName       string `form:"first_name" json:"first_name" validate:"max=150"`
	LastName        string `form:"last_name" json:"last_name" validate:"max=150"`
	Password        string `form:"password" json:"-" validate:"required" trim:"false"`
	PasswordConfirm string `form:"password_confirm" json:"-" validate:"required,eqfield=Password" trim:"false"`
}

func (f RegisterForm) Input() services.RegisterInput {
	return services.RegisterInput{
		Username:        f.Username,
		Email:           f.Email,
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		Password:        f.Password,
		PasswordConfirm: f.PasswordConfirm,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func optionalID(s string) *int64 {
	if id, ok := utils.ParseID(s); ok {
		return &id
	}
	return nil
}
