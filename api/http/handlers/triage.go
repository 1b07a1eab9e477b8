package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/triage/api/http/presenter"
	"github.com/artem13815/triage/pkg/triage"
)

type TriageHandler struct {
	uc     triage.UseCase
	logger *zap.Logger
}

func NewTriageHandler(uc triage.UseCase, logger *zap.Logger) *TriageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TriageHandler{uc: uc, logger: logger}
}

// recommendRequest uses pointers so that absent fields and null elements can be
// told apart from zero values. Age accepts integral numbers such as 34.0.
type recommendRequest struct {
	Gender   *string    `json:"gender" example:"female"`
	Age      *float64   `json:"age" swaggertype:"integer" example:"34"`
	Symptoms *[]*string `json:"symptoms" swaggertype:"array,string" example:"sakit kepala,mual"`
}

func (r recommendRequest) toPatient() (triage.PatientInfo, error) {
	var missing []string
	if r.Gender == nil {
		missing = append(missing, "gender")
	}
	if r.Age == nil {
		missing = append(missing, "age")
	}
	if r.Symptoms == nil {
		missing = append(missing, "symptoms")
	}
	if len(missing) > 0 {
		return triage.PatientInfo{}, fmt.Errorf("field required: %s", strings.Join(missing, ", "))
	}

	age := *r.Age
	if age != math.Trunc(age) || age < math.MinInt32 || age > math.MaxInt32 {
		return triage.PatientInfo{}, fmt.Errorf("field \"age\": expected integer, got %v", age)
	}
	symptoms := make([]string, 0, len(*r.Symptoms))
	for i, s := range *r.Symptoms {
		if s == nil {
			return triage.PatientInfo{}, fmt.Errorf("field \"symptoms[%d]\": expected string, got null", i)
		}
		symptoms = append(symptoms, *s)
	}
	return triage.PatientInfo{Gender: *r.Gender, Age: int(age), Symptoms: symptoms}, nil
}

// Recommend suggests the specialist department for a patient.
// @Summary     Recommend Specialist Department
// @Description Accepts patient gender, age, and a list of symptoms, and returns a recommended specialist department.
// @Tags        triage
// @Accept      json
// @Produce     json
// @Param       input body recommendRequest true "Patient information"
// @Success     200 {object} triage.DepartmentRecommendation
// @Failure     422 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /recommend [post]
func (h *TriageHandler) Recommend(c *fiber.Ctx) error {
	var req recommendRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, describeDecodeError(err))
	}
	patient, err := req.toPatient()
	if err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
	}

	rec, err := h.uc.Recommend(c.UserContext(), patient)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

func (h *TriageHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, triage.ErrOutputParse):
		h.logger.Error("output parsing error", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf(
			"LLM output could not be parsed. This often means the LLM did not return valid JSON or did not follow the schema. Error: %v", err))
	case errors.Is(err, triage.ErrOutputValidation):
		h.logger.Error("output validation error", zap.Error(err))
		detail := strings.TrimPrefix(err.Error(), triage.ErrOutputValidation.Error()+": ")
		return presenter.Error(c, http.StatusInternalServerError, "LLM response validation failed: "+detail)
	default:
		h.logger.Error("recommendation failed", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf(
			"An internal server error occurred: %v. Please check the server logs. "+
				"Ensure the correct LLM model ID is specified and your API key is valid.", err))
	}
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return fmt.Sprintf("request body: expected object, got %s", typeErr.Value)
		}
		return fmt.Sprintf("field %q: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	return "invalid JSON payload"
}
