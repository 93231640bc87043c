package forms

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"nebulanotes/internal/services"
	"nebulanotes/internal/utils"
)

// DateTimeLayouts are accepted for observation_date, most specific first.
// Values without an offset are read in the server's local zone.
var DateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateTimeInputLayout is what a datetime-local input submits.
const DateTimeInputLayout = "2006-01-02T15:04"

var now = time.Now

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the form tag as field name and
// the custom rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		mustRegister(v, "pk", func(fl validator.FieldLevel) bool {
			_, ok := utils.ParseID(fl.Field().String())
			return ok
		})
		mustRegister(v, "float", func(fl validator.FieldLevel) bool {
			f, err := strconv.ParseFloat(fl.Field().String(), 64)
			return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
		})
		mustRegister(v, "wholenumber", func(fl validator.FieldLevel) bool {
			_, err := strconv.Atoi(fl.Field().String())
			return err == nil
		})
		mustRegister(v, "anydatetime", func(fl validator.FieldLevel) bool {
			_, ok := ParseDateTime(fl.Field().String())
			return ok
		})
		mustRegister(v, "notfuture", func(fl validator.FieldLevel) bool {
			t, ok := ParseDateTime(fl.Field().String())
			return !ok || !t.After(now())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

// ParseDateTime parses s with the first matching layout of DateTimeLayouts.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range DateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Bind decodes the request form into dst, trims its string fields and runs
// the validate rules. The returned error is nil or a *services.ValidationError
// ready for rendering.
func Bind(c *gin.Context, dst interface{}) *services.ValidationError {
	if err := c.ShouldBind(dst); err != nil {
		ve := services.NewValidationError()
		ve.AddNonField("The submitted form could not be read.")
		return ve
	}
	trimStrings(reflect.ValueOf(dst))
	return Validate(dst)
}

// Validate runs the validate rules on an already decoded form.
func Validate(form interface{}) *services.ValidationError {
	err := Validator().Struct(form)
	if err == nil {
		return nil
	}

	ve := services.NewValidationError()
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.AddNonField(err.Error())
		return ve
	}
	for _, fe := range fieldErrs {
		ve.Add(fieldName(fe.Field()), message(fe))
	}
	return ve
}

// related_objects[2] -> related_objects
func fieldName(f string) string {
	if i := strings.IndexByte(f, '['); i >= 0 {
		return f[:i]
	}
	return f
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return services.MsgRequired
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).",
			fe.Param(), utf8.RuneCountInString(fmt.Sprint(fe.Value())))
	case "oneof":
		return fmt.Sprintf("Select a valid choice. %v is not one of the available choices.", fe.Value())
	case "pk":
		if strings.Contains(fe.Field(), "[") {
			return fmt.Sprintf("Select a valid choice. %v is not one of the available choices.", fe.Value())
		}
		return services.MsgInvalidChoice
	case "float":
		return "Enter a number."
	case "wholenumber":
		return "Enter a whole number."
	case "datetime":
		return "Enter a valid date."
	case "anydatetime":
		return "Enter a valid date/time."
	case "notfuture":
		return services.MsgFutureObservation
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "eqfield":
		return services.MsgPasswordsMismatch
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}

func trimStrings(v reflect.Value) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			if v.Type().Field(i).Tag.Get("trim") == "false" {
				continue
			}
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Slice:
			if f.Type().Elem().Kind() != reflect.String {
				continue
			}
			kept := reflect.MakeSlice(f.Type(), 0, f.Len())
			for j := 0; j < f.Len(); j++ {
				s := strings.TrimSpace(f.Index(j).String())
				if s != "" {
					kept = reflect.Append(kept, reflect.ValueOf(s))
				}
			}
			f.Set(kept)
		}
	}
}
