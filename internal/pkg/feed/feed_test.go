package feed_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"scanreport/internal/pkg/feed"
	"scanreport/internal/testhelpers"
)

var _ = Describe("Client.Fetch", func() {
	var client *feed.Client

	const feedURL = "https://dashproduction.x10.mx/masterfile/scanner/machining/barcode/scanner.json"

	BeforeEach(func() {
		testhelpers.Activate()
		client = feed.New(feedURL)
		client.UseDefaultClient()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	It("decodes records, coercing qty and tolerating a missing barcode", func() {
		testhelpers.New("https://dashproduction.x10.mx").
			Get("/masterfile/scanner/machining/barcode/scanner.json").Reply(200).
			BodyString(`[
				{"date":"2024-03-05","item":"Bolt","client":"Acme","department":"Mach","qty":10,"barcode":"B1"},
				{"date":"03/05/2024","item":"Nut","client":"Acme","department":"Mach","qty":"25"},
				{"item":"Washer","client":"Acme","department":"Mach","qty":3,"barcode":"B3"}
			]`).
			Header("Content-Type", "application/json")

		records, err := client.Fetch()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(3))

		Expect(records[0].Item).To(Equal("Bolt"))
		Expect(records[0].Qty).To(Equal(feed.Quantity("10")))
		Expect(records[0].Barcode).To(Equal("B1"))

		Expect(records[1].Qty).To(Equal(feed.Quantity("25")))
		Expect(records[1].Barcode).To(BeEmpty())

		// A missing date survives the fetch; the filter excludes it later.
		Expect(records[2].Date).To(BeEmpty())
	})

	It("preserves fetch order", func() {
		testhelpers.New("https://dashproduction.x10.mx").
			Get("/masterfile/scanner/machining/barcode/scanner.json").Reply(200).
			BodyString(`[
				{"date":"2024-03-05","item":"C","client":"x","department":"y","qty":1},
				{"date":"2024-03-05","item":"A","client":"x","department":"y","qty":1},
				{"date":"2024-03-05","item":"B","client":"x","department":"y","qty":1}
			]`)

		records, err := client.Fetch()
		Expect(err).NotTo(HaveOccurred())

		items := []string{records[0].Item, records[1].Item, records[2].Item}
		Expect(items).To(Equal([]string{"C", "A", "B"}))
	})

	It("returns an error on a non-200 status", func() {
		testhelpers.New("https://dashproduction.x10.mx").
			Get("/masterfile/scanner/machining/barcode/scanner.json").Reply(503).
			BodyString("upstream down")

		records, err := client.Fetch()
		Expect(err).To(MatchError(ContainSubstring("feed error 503")))
		Expect(records).To(BeNil())
	})

	It("returns an error on a malformed body", func() {
		testhelpers.New("https://dashproduction.x10.mx").
			Get("/masterfile/scanner/machining/barcode/scanner.json").Reply(200).
			BodyString(`{"not":"an array"`)

		_, err := client.Fetch()
		Expect(err).To(MatchError(ContainSubstring("decoding feed")))
	})

	It("returns an error when the transport fails", func() {
		// No expectation registered: the mock transport rejects the request.
		_, err := client.Fetch()
		Expect(err).To(HaveOccurred())
	})
})
