package templates

import (
	"embed"
	"html/template"
	"strconv"
	"time"

	"nebulanotes/internal/models"
	"nebulanotes/internal/services"
)

//go:embed html/*.html
var files embed.FS

// Funcs are available to every page.
var Funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format(models.DateLayout) },
	"datetime": func(t time.Time) string {
		return t.In(time.Local).Format("2006-01-02 15:04")
	},
	"id": func(id int64) string { return strconv.FormatInt(id, 10) },
	"errs": func(ve *services.ValidationError, field string) []string {
		if ve == nil {
			return nil
		}
		return ve.Fields[field]
	},
	"derefInt": func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	},
}

// Load parses the embedded pages. Each page is addressed by its file name,
// e.g. "galaxy_list.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "html/*.html")
}
