package patients

func ComputeStats(items []Patient) Stats {
	st := Stats{
		TotalPatients: len(items),
		CasesByStatus: map[CaseStatus]int{},
	}
	for _, p := range items {
		st.TotalCases += len(p.Cases)
		for _, c := range p.Cases {
			st.CasesByStatus[c.Status]++
		}
	}
	return st
}
