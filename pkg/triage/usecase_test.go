package triage_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/artem13815/triage/pkg/llm"
	"github.com/artem13815/triage/pkg/triage"
)

var _ = Describe("Service", func() {
	var (
		calls   int
		seen    llm.Prompt
		reply   string
		failure error
		svc     triage.UseCase
	)

	BeforeEach(func() {
		calls, reply, failure = 0, "", nil
		model := llm.ChatModelFunc(func(_ context.Context, p llm.Prompt) (string, error) {
			calls++
			seen = p
			return reply, failure
		})
		svc = triage.NewService(model, nil)
	})

	patient := triage.PatientInfo{Gender: "male", Age: 60, Symptoms: []string{"nyeri dada", "sesak napas"}}

	It("returns the validated department", func() {
		reply = `{"recommended_department": "Cardiology"}`
		rec, err := svc.Recommend(context.Background(), patient)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec).To(Equal(triage.DepartmentRecommendation{RecommendedDepartment: "Cardiology"}))
		Expect(calls).To(Equal(1))
		Expect(seen.User).To(ContainSubstring("nyeri dada, sesak napas"))
	})

	It("reports malformed output as a parse error", func() {
		reply = "Cardiology"
		_, err := svc.Recommend(context.Background(), patient)
		Expect(err).To(MatchError(triage.ErrOutputParse))
	})

	It("reports a missing field as a validation error", func() {
		reply = `{"department": "Cardiology"}`
		_, err := svc.Recommend(context.Background(), patient)
		Expect(err).To(MatchError(triage.ErrOutputValidation))
	})

	It("does not retry provider failures", func() {
		failure = errors.New("quota exceeded")
		_, err := svc.Recommend(context.Background(), patient)
		Expect(err).To(MatchError(ContainSubstring("quota exceeded")))
		Expect(err).NotTo(MatchError(triage.ErrOutputParse))
		Expect(calls).To(Equal(1))
	})

	It("fails without a model", func() {
		_, err := triage.NewService(nil, nil).Recommend(context.Background(), patient)
		Expect(err).To(HaveOccurred())
	})
})
