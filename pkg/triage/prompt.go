package triage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/artem13815/triage/pkg/llm"
)

const fieldRecommendedDepartment = "recommended_department"

// OutputSchema is the only shape accepted from the model.
var OutputSchema = llm.Schema{
	Title: "LLMDepartmentOutput",
	Properties: []llm.Property{
		{Name: fieldRecommendedDepartment, Description: "The name of the recommended specialist department."},
	},
}

// Departments are suggested to the model; answers outside the list are still accepted.
var Departments = []string{
	"Cardiology", "Dentistry", "Dermatology", "General Medicine", "Neurology",
	"Neurosurgery", "Pathology", "Plastic & Reconstruction Surgery", "Psychiatry", "Radiology",
	"Rehabilitation Medicine", "Orthopaedics", "Urology", "Emergency", "Obstetrics & Gynaecology",
	"Pulmonology/Respiratory", "Nephrology", "Internal Medicine", "General Surgery",
	"Ophthalmology", "ENT (Ear, Nose, Throat)", "Paediatrics",
}

const userTemplate = "Patient Gender: %s\n" +
	"Patient Age: %s\n" +
	"Patient Symptoms (Bahasa Indonesia): %s\n\n" +
	"Based on this information, what is the recommended department?"

var systemPrompt = buildSystemPrompt()

// BuildPrompt substitutes the patient into the fixed template. Symptoms are
// joined with ", " in their original order.
func BuildPrompt(p PatientInfo) llm.Prompt {
	schema := OutputSchema
	return llm.Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf(userTemplate, p.Gender, strconv.Itoa(p.Age), JoinSymptoms(p.Symptoms)),
		Schema: &schema,
	}
}

func JoinSymptoms(symptoms []string) string {
	return strings.Join(symptoms, ", ")
}

func buildSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a highly experienced and accurate hospital triage assistant. ")
	b.WriteString("Your task is to recommend the single most appropriate specialist department based on patient details. ")
	b.WriteString("The patient symptoms will be provided in Bahasa Indonesia. ")
	b.WriteString("Your response MUST be a JSON object with a single key '" + fieldRecommendedDepartment + "' and its value being the department name in English. ")
	b.WriteString("Adhere strictly to the following JSON schema:\n")
	b.WriteString(FormatInstructions(OutputSchema))
	b.WriteString("\n\n")
	b.WriteString(`Example Output: {"` + fieldRecommendedDepartment + `": "Neurology"}`)
	b.WriteString("\n\n")
	b.WriteString("Consider common medical departments such as: ")
	b.WriteString(strings.Join(Departments, ", "))
	b.WriteString(". ")
	b.WriteString("If a specific department isn't perfectly clear, choose the most general but appropriate one (e.g., Internal Medicine or Emergency).")
	return b.String()
}

// FormatInstructions tells the model how to shape its reply for the given schema.
func FormatInstructions(s llm.Schema) string {
	raw, err := json.Marshal(s.JSONSchema())
	if err != nil {
		// map of strings and slices always marshals
		panic(err)
	}
	return "The output should be formatted as a JSON instance that conforms to the JSON schema below.\n\n" +
		`As an example, for the schema {"properties": {"foo": {"title": "Foo", "description": "a list of strings", "type": "array", "items": {"type": "string"}}}, "required": ["foo"]}` + "\n" +
		`the object {"foo": ["bar", "baz"]} is a well-formatted instance of the schema. The object {"properties": {"foo": ["bar", "baz"]}} is not well-formatted.` + "\n\n" +
		"Here is the output schema:\n```\n" + string(raw) + "\n```"
}
