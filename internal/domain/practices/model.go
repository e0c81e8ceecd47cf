package practices

import "dental-lab/internal/platform/civil"

const StatusActive = "Active"

// Practice es una clínica asociada al laboratorio.
// Doctors y RecentCases son contadores fijados al crear (o traídos de la
// fuente); no se recalculan desde otras colecciones.
type Practice struct {
	PracticeID     int        `json:"practiceID" yaml:"practiceID"`
	Name           string     `json:"name" yaml:"name"`
	CompanyName    string     `json:"companyName" yaml:"companyName"`
	Address        string     `json:"address" yaml:"address"`
	Phone          string     `json:"phone" yaml:"phone"`
	Email          string     `json:"email,omitempty" yaml:"email,omitempty"`
	TaxID          string     `json:"taxID,omitempty" yaml:"taxID,omitempty"`
	OpeningHours   string     `json:"openingHours,omitempty" yaml:"openingHours,omitempty"`
	DeliveryMethod string     `json:"deliveryMethod,omitempty" yaml:"deliveryMethod,omitempty"`
	PartnerSince   civil.Date `json:"partnerSince" yaml:"partnerSince"`
	Status         string     `json:"status" yaml:"status"`
	Doctors        int        `json:"doctors" yaml:"doctors"`
	RecentCases    int        `json:"recentCases" yaml:"recentCases"`
}

func (p Practice) EntityID() int { return p.PracticeID }

type Stats struct {
	TotalPractices  int `json:"totalPractices"`
	ActivePractices int `json:"activePractices"`
	TotalDoctors    int `json:"totalDoctors"`
	RecentWork      int `json:"recentWork"`
}
