package triage_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/artem13815/triage/pkg/triage"
)

var _ = DescribeTable("IsKnownDepartment",
	func(name string, known bool) {
		Expect(triage.IsKnownDepartment(name)).To(Equal(known))
	},
	Entry("exact", "Neurology", true),
	Entry("case and spacing", "  internal   MEDICINE ", true),
	Entry("punctuation variant", "ENT Ear Nose Throat", true),
	Entry("slash variant", "pulmonology respiratory", true),
	Entry("outside the list", "Oncology", false),
	Entry("empty", "", false),
)
