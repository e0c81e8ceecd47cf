package doctors

import "time"

// ComputeStats resume un snapshot. ActiveDoctors == TotalDoctors: los doctores
// todavía no tienen estado.
func ComputeStats(items []Doctor, now time.Time) Stats {
	cutoff := now.Add(-RecentWindow)

	st := Stats{
		TotalDoctors:  len(items),
		ActiveDoctors: len(items),
	}
	for _, d := range items {
		st.TotalPatients += len(d.Patients)
		for _, p := range d.Patients {
			if p.LastWork.IsZero() {
				continue
			}
			if !p.LastWork.Before(cutoff) {
				st.RecentWork++
			}
		}
	}
	return st
}
