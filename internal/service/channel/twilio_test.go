package channel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"cluey.app/bridge/internal/service/channel"
)

var _ = Describe("NeutralAck", func() {
	It("renders an empty TwiML response document", func() {
		doc := channel.NeutralAck()
		Expect(doc).To(ContainSubstring("<?xml"))
		Expect(doc).To(ContainSubstring("<Response"))
		// neutral means no reply verbs at all
		Expect(doc).NotTo(ContainSubstring("<Message"))
	})
})
