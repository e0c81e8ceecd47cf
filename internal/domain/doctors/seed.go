package doctors

import "dental-lab/internal/platform/civil"

// Seed devuelve la colección inicial de doctores (modo dev, sin fuente remota).
func Seed() []Doctor {
	date := civil.MustParse

	return []Doctor{
		{
			DoctorID:  1,
			Name:      "Dr. Sarah Johnson",
			NickName:  "Dr. Sarah",
			Email:     "sarah.johnson@dentalclinic.com",
			Phone:     "(555) 123-4567",
			Practice:  "Downtown Dental Clinic",
			Specialty: "General Dentistry",
			JoinDate:  date("2022-03-15"),
			Patients: []PatientSummary{
				{Name: "Maria Rodriguez", Cases: 2, LastWork: date("2025-07-30"), Type: "Crown & Bridge"},
				{Name: "Emily Johnson", Cases: 2, LastWork: date("2025-07-30"), Type: "Crown & Temporary"},
				{Name: "Patricia Williams", Cases: 3, LastWork: date("2025-07-28"), Type: "Veneers & Crowns"},
				{Name: "Michael Thompson", Cases: 1, LastWork: date("2025-07-25"), Type: "Implant Crown"},
			},
		},
		{
			DoctorID:  2,
			Name:      "Dr. Michael Martinez",
			NickName:  "Dr. Mike",
			Email:     "m.martinez@elitesmile.com",
			Phone:     "(555) 234-5678",
			Practice:  "Elite Smile Center",
			Specialty: "Orthodontics",
			JoinDate:  date("2023-01-20"),
			Patients: []PatientSummary{
				{Name: "James Thompson", Cases: 3, LastWork: date("2025-07-29"), Type: "Implant & Veneers & Night Guard"},
				{Name: "Michael Brown", Cases: 2, LastWork: date("2025-08-08"), Type: "Full Denture & Reline"},
				{Name: "Jennifer Davis", Cases: 1, LastWork: date("2025-07-22"), Type: "Bridge (4-unit)"},
				{Name: "Robert Wilson", Cases: 2, LastWork: date("2025-07-20"), Type: "Partial Denture"},
			},
		},
		{
			DoctorID:  3,
			Name:      "Dr. Lisa Williams",
			NickName:  "Dr. Lisa",
			Email:     "lisa.williams@perfectteeth.com",
			Phone:     "(555) 345-6789",
			Practice:  "Perfect Teeth Practice",
			Specialty: "Pediatric Dentistry",
			JoinDate:  date("2022-08-10"),
			Patients: []PatientSummary{
				{Name: "Sarah Kim", Cases: 2, LastWork: date("2025-07-25"), Type: "Retainer & Whitening Trays"},
				{Name: "Lisa Wang", Cases: 2, LastWork: date("2025-07-22"), Type: "Veneers & Composite"},
				{Name: "Amanda Miller", Cases: 1, LastWork: date("2025-07-18"), Type: "Clear Aligners"},
				{Name: "Kevin Martinez", Cases: 3, LastWork: date("2025-07-15"), Type: "Orthodontic Appliances"},
			},
		},
		{
			DoctorID:  4,
			Name:      "Dr. David Chen",
			NickName:  "Dr. David",
			Email:     "d.chen@advancedcare.com",
			Phone:     "(555) 456-7890",
			Practice:  "Advanced Dental Care",
			Specialty: "Endodontics",
			JoinDate:  date("2023-06-05"),
			Patients: []PatientSummary{
				{Name: "Robert Davis", Cases: 3, LastWork: date("2025-07-28"), Type: "Partial Denture & Crown & Inlay"},
				{Name: "David Martinez", Cases: 2, LastWork: date("2025-07-25"), Type: "Maryland Bridge & Post & Core"},
				{Name: "Thomas Anderson", Cases: 1, LastWork: date("2025-07-20"), Type: "Implant Crown"},
			},
		},
		{
			DoctorID:  5,
			Name:      "Dr. Jennifer Taylor",
			NickName:  "Dr. Jen",
			Email:     "jennifer.taylor@familycare.com",
			Phone:     "(555) 567-8901",
			Practice:  "Family Care Dental",
			Specialty: "General Dentistry",
			JoinDate:  date("2022-11-30"),
			Patients: []PatientSummary{
				{Name: "Emma Johnson", Cases: 2, LastWork: date("2025-06-15"), Type: "Space Maintainers"},
				{Name: "Noah Williams", Cases: 1, LastWork: date("2025-06-10"), Type: "Pediatric Crown"},
				{Name: "Olivia Davis", Cases: 1, LastWork: date("2025-06-05"), Type: "Fluoride Appliance"},
			},
		},
		{
			DoctorID:  6,
			Name:      "Dr. Robert Anderson",
			NickName:  "Dr. Bob",
			Email:     "robert.anderson@modernsmile.com",
			Phone:     "(555) 678-9012",
			Practice:  "Modern Smile Studio",
			Specialty: "Prosthodontics",
			JoinDate:  date("2023-02-14"),
			Patients: []PatientSummary{
				{Name: "Sophia Martinez", Cases: 4, LastWork: date("2025-05-20"), Type: "Veneers & Whitening"},
				{Name: "Isabella Garcia", Cases: 2, LastWork: date("2025-05-15"), Type: "Cosmetic Crowns"},
				{Name: "Mason Rodriguez", Cases: 1, LastWork: date("2025-05-10"), Type: "Smile Makeover"},
			},
		},
		{
			DoctorID:  7,
			Name:      "Dr. Amanda White",
			NickName:  "Dr. Amanda",
			Email:     "amanda.white@precisiondental.com",
			Phone:     "(555) 789-0123",
			Practice:  "Precision Dental Group",
			Specialty: "Oral Surgery",
			JoinDate:  date("2023-04-22"),
			Patients: []PatientSummary{
				{Name: "Ethan Thompson", Cases: 2, LastWork: date("2025-07-26"), Type: "Post & Core & Crown"},
				{Name: "Ava Wilson", Cases: 1, LastWork: date("2025-07-20"), Type: "Endodontic Crown"},
				{Name: "Liam Brown", Cases: 1, LastWork: date("2025-07-15"), Type: "Root Canal Crown"},
			},
		},
		{
			DoctorID:  8,
			Name:      "Dr. Christopher Lee",
			NickName:  "Dr. Chris",
			Email:     "chris.lee@summitdental.com",
			Phone:     "(555) 890-1234",
			Practice:  "Summit Dental Care",
			Specialty: "Periodontics",
			JoinDate:  date("2022-12-08"),
			Patients: []PatientSummary{
				{Name: "Charlotte Davis", Cases: 2, LastWork: date("2025-07-25"), Type: "Gum Graft & Crown"},
				{Name: "Benjamin Miller", Cases: 1, LastWork: date("2025-07-18"), Type: "Perio Maintenance"},
				{Name: "Amelia Garcia", Cases: 3, LastWork: date("2025-07-12"), Type: "Deep Cleaning & Crowns"},
			},
		},
	}
}
