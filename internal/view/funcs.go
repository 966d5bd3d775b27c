package view

import (
	"html/template"
	"time"

	"github.com/iliyamo/fyyur/internal/catalog"
	"github.com/iliyamo/fyyur/internal/model"
)

// Date layouts for the datetime template function.
const (
	MediumLayout = "Mon 01, 02, 2006 3:04PM"
	FullLayout   = "Monday January, 2, 2006 at 3:04PM"
)

var funcs = template.FuncMap{
	"datetime": FormatDateTime,
	"genres":   model.AllGenres,
	"states":   model.AllStates,
}

// FormatDateTime formats a start time for display.  v may be a time.Time
// or a string in catalog.StartTimeLayout; format is "full" or "medium"
// (the default).  Values that cannot be read are returned unchanged.
func FormatDateTime(v any, format ...string) string {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x.UTC()
	case *time.Time:
		if x == nil {
			return ""
		}
		t = x.UTC()
	case string:
		parsed, err := time.ParseInLocation(catalog.StartTimeLayout, x, time.UTC)
		if err != nil {
			return x
		}
		t = parsed
	default:
		return ""
	}
	if len(format) > 0 && format[0] == "full" {
		return t.Format(FullLayout)
	}
	return t.Format(MediumLayout)
}
