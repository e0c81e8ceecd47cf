package patients

import "dental-lab/internal/query"

func searchFields(p Patient) []string {
	fields := make([]string, 0, 3+2*len(p.Cases))
	fields = append(fields, p.Name, p.Phone, p.Email)
	for _, c := range p.Cases {
		fields = append(fields, c.Type, string(c.Status))
	}
	return fields
}

// Search busca en nombre, teléfono, email y en el tipo/estado de cualquier caso.
func Search(items []Patient, term string) []Patient {
	return query.Search(items, term, searchFields)
}

// FilterByStatus conserva los pacientes con al menos un caso en status
// (comparación exacta). status vacío no filtra.
func FilterByStatus(items []Patient, status CaseStatus) []Patient {
	if status == "" {
		return items
	}
	return query.Filter(items, func(p Patient) bool {
		for _, c := range p.Cases {
			if c.Status == status {
				return true
			}
		}
		return false
	})
}

type Filter struct {
	Query  string
	Status CaseStatus
}

func Apply(items []Patient, f Filter) []Patient {
	return FilterByStatus(Search(items, f.Query), f.Status)
}
