package patients

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"dental-lab/internal/platform/civil"
)

type CaseStatus string

const (
	CaseCompleted  CaseStatus = "completed"
	CaseInProgress CaseStatus = "in-progress"
	CaseUrgent     CaseStatus = "urgent"
	CaseNew        CaseStatus = "new"
)

// Case es un trabajo de laboratorio. Pertenece a un único paciente.
type Case struct {
	Type   string     `json:"type" yaml:"type"`
	Tooth  string     `json:"tooth" yaml:"tooth"`
	Status CaseStatus `json:"status" yaml:"status"`
	Date   civil.Date `json:"date" yaml:"date"`
}

type Patient struct {
	PatientID             int         `json:"patientID" yaml:"patientID"`
	Name                  string      `json:"name" yaml:"name"`
	BirthDate             *civil.Date `json:"birthDate,omitempty" yaml:"birthDate,omitempty"`
	Phone                 string      `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email                 string      `json:"email,omitempty" yaml:"email,omitempty"`
	ShadeID               Shade       `json:"shadeID,omitempty" yaml:"shadeID,omitempty"`
	HealthInsuranceNumber string      `json:"healthInsuranceNumber,omitempty" yaml:"healthInsuranceNumber,omitempty"`
	Cases                 []Case      `json:"cases" yaml:"cases"`
}

// Shade es el código de color (p.ej. "A2"). Algunas fuentes lo envían como
// número; se guarda siempre en su forma de texto.
type Shade string

func (s *Shade) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Shade(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("shadeID: expected string or number: %w", err)
	}
	*s = Shade(n.String())
	return nil
}

func (s *Shade) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("shadeID: expected scalar at line %d", n.Line)
	}
	if n.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = Shade(n.Value)
	return nil
}

func (p Patient) EntityID() int { return p.PatientID }

type Stats struct {
	TotalPatients int                `json:"totalPatients"`
	TotalCases    int                `json:"totalCases"`
	CasesByStatus map[CaseStatus]int `json:"casesByStatus"`
}
