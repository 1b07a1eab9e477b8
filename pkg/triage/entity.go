package triage

import (
	"context"
	"errors"
)

var (
	// ErrOutputParse means the model reply was not a JSON document.
	ErrOutputParse = errors.New("llm output could not be parsed")
	// ErrOutputValidation means the reply was JSON but did not match the output schema.
	ErrOutputValidation = errors.New("llm response validation failed")
)

// PatientInfo is the incoming patient description. It lives for one request only.
type PatientInfo struct {
	Gender   string   `json:"gender"`
	Age      int      `json:"age"`
	Symptoms []string `json:"symptoms"`
}

// DepartmentRecommendation is the outgoing answer. The department is free text
// chosen by the model.
type DepartmentRecommendation struct {
	RecommendedDepartment string `json:"recommended_department"`
}

// UseCase recommends a specialist department for a patient.
type UseCase interface {
	Recommend(ctx context.Context, patient PatientInfo) (DepartmentRecommendation, error)
}
