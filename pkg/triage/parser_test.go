package triage_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/artem13815/triage/pkg/triage"
)

var _ = Describe("ParseRecommendation", func() {
	DescribeTable("accepted replies",
		func(raw, want string) {
			rec, err := triage.ParseRecommendation(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.RecommendedDepartment).To(Equal(want))
		},
		Entry("plain object", `{"recommended_department": "Neurology"}`, "Neurology"),
		Entry("surrounding whitespace", "\n  {\"recommended_department\": \"Cardiology\"}\n", "Cardiology"),
		Entry("json fence", "```json\n{\"recommended_department\": \"Dermatology\"}\n```", "Dermatology"),
		Entry("bare fence", "```\n{\"recommended_department\": \"Urology\"}\n```", "Urology"),
		Entry("object inside prose", `Sure! {"recommended_department": "Emergency"} Hope this helps.`, "Emergency"),
		Entry("extra keys are ignored", `{"recommended_department": "ENT (Ear, Nose, Throat)", "reason": "ear pain"}`, "ENT (Ear, Nose, Throat)"),
		Entry("empty department is not rejected", `{"recommended_department": ""}`, ""),
	)

	DescribeTable("unparseable replies",
		func(raw string) {
			_, err := triage.ParseRecommendation(raw)
			Expect(err).To(MatchError(triage.ErrOutputParse))
		},
		Entry("prose", "The patient should see a neurologist."),
		Entry("empty", ""),
		Entry("truncated object", `{"recommended_department": "Neuro`),
		Entry("single quotes", `{'recommended_department': 'Neurology'}`),
	)

	DescribeTable("replies that break the schema",
		func(raw string) {
			_, err := triage.ParseRecommendation(raw)
			Expect(err).To(MatchError(triage.ErrOutputValidation))
		},
		Entry("missing field", `{"department": "Neurology"}`),
		Entry("number value", `{"recommended_department": 42}`),
		Entry("null value", `{"recommended_department": null}`),
		Entry("list value", `{"recommended_department": ["Neurology"]}`),
		Entry("array document", `["Neurology"]`),
		Entry("string document", `"Neurology"`),
	)
})
