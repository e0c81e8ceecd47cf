package practices

import "dental-lab/internal/query"

func searchFields(p Practice) []string {
	return []string{p.Name, p.CompanyName, p.Email, p.Phone, p.Address}
}

func Search(items []Practice, term string) []Practice {
	return query.Search(items, term, searchFields)
}

// FilterByStatus conserva las prácticas cuyo Status es exactamente status.
// status vacío no filtra.
func FilterByStatus(items []Practice, status string) []Practice {
	if status == "" {
		return items
	}
	return query.Filter(items, func(p Practice) bool { return p.Status == status })
}

type Filter struct {
	Query  string
	Status string
}

func Apply(items []Practice, f Filter) []Practice {
	return FilterByStatus(Search(items, f.Query), f.Status)
}
