package doctors

import (
	"time"

	"dental-lab/internal/platform/civil"
)

const (
	DefaultPractice  = "To Be Assigned"
	DefaultSpecialty = "General Dentistry"

	// RecentWindow es la ventana de "trabajo reciente" hacia atrás desde ahora.
	RecentWindow = 30 * 24 * time.Hour
)

// PatientSummary es una copia desnormalizada de un paciente del doctor.
// No se recalcula cuando cambia la colección de pacientes.
type PatientSummary struct {
	Name     string     `json:"name" yaml:"name"`
	Cases    int        `json:"cases" yaml:"cases"`
	LastWork civil.Date `json:"lastWork" yaml:"lastWork"`
	Type     string     `json:"type" yaml:"type"`
}

// Doctor es un dentista con el que trabaja el laboratorio.
// Practice es el nombre de la práctica (texto libre, no FK).
type Doctor struct {
	DoctorID  int              `json:"doctorID" yaml:"doctorID"`
	Name      string           `json:"name" yaml:"name"`
	NickName  string           `json:"nickName" yaml:"nickName"`
	Email     string           `json:"email" yaml:"email"`
	Phone     string           `json:"phone" yaml:"phone"`
	Practice  string           `json:"practice" yaml:"practice"`
	Specialty string           `json:"specialty" yaml:"specialty"`
	JoinDate  civil.Date       `json:"joinDate" yaml:"joinDate"`
	Patients  []PatientSummary `json:"patients" yaml:"patients"`
}

func (d Doctor) EntityID() int { return d.DoctorID }

type Stats struct {
	TotalDoctors  int `json:"totalDoctors"`
	ActiveDoctors int `json:"activeDoctors"`
	TotalPatients int `json:"totalPatients"`
	RecentWork    int `json:"recentWork"`
}
