package triage_test

import (
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/artem13815/triage/pkg/triage"
)

var _ = Describe("BuildPrompt", func() {
	patient := triage.PatientInfo{
		Gender:   "female",
		Age:      34,
		Symptoms: []string{"sakit kepala", "mual", "pusing"},
	}

	It("joins symptoms in order with a comma and a space", func() {
		Expect(triage.JoinSymptoms(patient.Symptoms)).To(Equal("sakit kepala, mual, pusing"))
		Expect(triage.JoinSymptoms(nil)).To(BeEmpty())
	})

	It("substitutes the patient into the human message", func() {
		p := triage.BuildPrompt(patient)
		Expect(p.User).To(Equal("Patient Gender: female\n" +
			"Patient Age: 34\n" +
			"Patient Symptoms (Bahasa Indonesia): sakit kepala, mual, pusing\n\n" +
			"Based on this information, what is the recommended department?"))
	})

	It("carries the output schema", func() {
		p := triage.BuildPrompt(patient)
		Expect(p.Schema).NotTo(BeNil())
		Expect(p.Schema.Required()).To(Equal([]string{"recommended_department"}))
	})

	It("instructs the model about format and departments", func() {
		system := triage.BuildPrompt(patient).System
		Expect(system).To(ContainSubstring("hospital triage assistant"))
		Expect(system).To(ContainSubstring("Bahasa Indonesia"))
		Expect(system).To(ContainSubstring(`"recommended_department"`))
		for _, d := range triage.Departments {
			Expect(system).To(ContainSubstring(d))
		}
	})

	It("embeds a valid JSON schema in the format instructions", func() {
		instructions := triage.FormatInstructions(triage.OutputSchema)
		start := strings.Index(instructions, "```\n")
		end := strings.LastIndex(instructions, "\n```")
		Expect(start).To(BeNumerically(">=", 0))
		Expect(end).To(BeNumerically(">", start))

		var schema map[string]any
		Expect(json.Unmarshal([]byte(instructions[start+4:end]), &schema)).To(Succeed())
		Expect(schema).To(HaveKeyWithValue("type", "object"))
		Expect(schema["properties"]).To(HaveKey("recommended_department"))
	})
})
