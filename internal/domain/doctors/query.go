package doctors

import "dental-lab/internal/query"

func searchFields(d Doctor) []string {
	return []string{d.Name, d.NickName, d.Email, d.Phone, d.Practice, d.Specialty}
}

// Search busca term (sin distinguir mayúsculas) en nombre, nickname, email,
// teléfono, práctica y especialidad. term en blanco => items sin cambios.
func Search(items []Doctor, term string) []Doctor {
	return query.Search(items, term, searchFields)
}

// Filter combina búsqueda libre con filtros exactos (AND). Campos vacíos no filtran.
type Filter struct {
	Query     string
	Practice  string
	Specialty string
}

func Apply(items []Doctor, f Filter) []Doctor {
	out := Search(items, f.Query)
	if f.Practice == "" && f.Specialty == "" {
		return out
	}
	return query.Filter(out, func(d Doctor) bool {
		if f.Practice != "" && d.Practice != f.Practice {
			return false
		}
		if f.Specialty != "" && d.Specialty != f.Specialty {
			return false
		}
		return true
	})
}
