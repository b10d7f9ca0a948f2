package models

import (
	"encoding/json"
	"errors"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(g))
}

func (g *Gender) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.New("gender must be string")
	}
	switch str {
	case "Male":
		*g = GenderMale
	case "Female":
		*g = GenderFemale
	case "Other":
		*g = GenderOther
	default:
		return errors.New("invalid gender")
	}
	return nil
}

type CaseStatus string

const (
	CaseStatusOpen     CaseStatus = "Open"
	CaseStatusMatched  CaseStatus = "Matched"
	CaseStatusResolved CaseStatus = "Resolved"
)

func (s CaseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *CaseStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.New("case status must be string")
	}
	switch str {
	case "Open":
		*s = CaseStatusOpen
	case "Matched":
		*s = CaseStatusMatched
	case "Resolved":
		*s = CaseStatusResolved
	default:
		return errors.New("invalid case status")
	}
	return nil
}

type AssociationType string

const (
	AssociationTypePrimary   AssociationType = "Primary"
	AssociationTypeSecondary AssociationType = "Secondary"
	AssociationTypeSuspected AssociationType = "Suspected"
)

func (t AssociationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *AssociationType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.New("association type must be string")
	}
	switch str {
	case "Primary":
		*t = AssociationTypePrimary
	case "Secondary":
		*t = AssociationTypeSecondary
	case "Suspected":
		*t = AssociationTypeSuspected
	default:
		return errors.New("invalid association type")
	}
	return nil
}

type AlertType string

const (
	AlertTypeMultipleMissingSameLocation AlertType = "Multiple_Missing_Same_Location"
	AlertTypeRepeatSuspect               AlertType = "Repeat_Suspect"
	AlertTypeSuspiciousZone              AlertType = "Suspicious_Zone"
	AlertTypeFoundMatch                  AlertType = "Found_Match"
)

func (t AlertType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *AlertType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.New("alert type must be string")
	}
	switch str {
	case "Multiple_Missing_Same_Location":
		*t = AlertTypeMultipleMissingSameLocation
	case "Repeat_Suspect":
		*t = AlertTypeRepeatSuspect
	case "Suspicious_Zone":
		*t = AlertTypeSuspiciousZone
	case "Found_Match":
		*t = AlertTypeFoundMatch
	default:
		return errors.New("invalid alert type")
	}
	return nil
}

type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "Low"
	AlertSeverityMedium   AlertSeverity = "Medium"
	AlertSeverityHigh     AlertSeverity = "High"
	AlertSeverityCritical AlertSeverity = "Critical"
)

func (s AlertSeverity) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *AlertSeverity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.New("alert severity must be string")
	}
	switch str {
	case "Low":
		*s = AlertSeverityLow
	case "Medium":
		*s = AlertSeverityMedium
	case "High":
		*s = AlertSeverityHigh
	case "Critical":
		*s = AlertSeverityCritical
	default:
		return errors.New("invalid alert severity")
	}
	return nil
}
