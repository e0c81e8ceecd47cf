package patients

import "dental-lab/internal/platform/civil"

func Seed() []Patient {
	date := civil.MustParse
	birth := func(s string) *civil.Date {
		d := civil.MustParse(s)
		return &d
	}

	return []Patient{
		{
			PatientID: 1,
			Name:      "Maria Rodriguez",
			BirthDate: birth("1984-02-11"),
			Phone:     "(555) 201-3344",
			Email:     "maria.rodriguez@mail.com",
			ShadeID:   "A2",
			Cases: []Case{
				{Type: "Crown", Tooth: "#14", Status: CaseCompleted, Date: date("2025-07-30")},
				{Type: "Bridge", Tooth: "#3-#5", Status: CaseInProgress, Date: date("2025-08-12")},
			},
		},
		{
			PatientID: 2,
			Name:      "James Thompson",
			BirthDate: birth("1971-09-23"),
			Phone:     "(555) 202-7781",
			Email:     "j.thompson@mail.com",
			ShadeID:   "B1",
			Cases: []Case{
				{Type: "Implant Crown", Tooth: "#19", Status: CaseUrgent, Date: date("2025-08-04")},
				{Type: "Veneers", Tooth: "#7-#10", Status: CaseInProgress, Date: date("2025-08-15")},
				{Type: "Night Guard", Tooth: "Upper arch", Status: CaseNew, Date: date("2025-08-20")},
			},
		},
		{
			PatientID: 3,
			Name:      "Sarah Kim",
			BirthDate: birth("2009-05-02"),
			Phone:     "(555) 203-9012",
			Cases: []Case{
				{Type: "Retainer", Tooth: "Lower arch", Status: CaseCompleted, Date: date("2025-07-25")},
			},
		},
		{
			PatientID:             4,
			Name:                  "Robert Davis",
			Email:                 "robert.davis@mail.com",
			HealthInsuranceNumber: "HIN-55023817",
			Cases: []Case{
				{Type: "Partial Denture", Tooth: "Upper arch", Status: CaseUrgent, Date: date("2025-08-02")},
				{Type: "Inlay", Tooth: "#30", Status: CaseCompleted, Date: date("2025-07-28")},
			},
		},
		{
			PatientID: 5,
			Name:      "Emma Johnson",
			BirthDate: birth("2016-12-19"),
			Cases:     []Case{},
		},
	}
}
