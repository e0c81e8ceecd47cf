package practices

func ComputeStats(items []Practice) Stats {
	st := Stats{TotalPractices: len(items)}
	for _, p := range items {
		if p.Status == StatusActive {
			st.ActivePractices++
		}
		st.TotalDoctors += p.Doctors
		st.RecentWork += p.RecentCases
	}
	return st
}
