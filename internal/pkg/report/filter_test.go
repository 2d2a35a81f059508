package report_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"scanreport/internal/pkg/caldate"
	"scanreport/internal/pkg/feed"
	"scanreport/internal/pkg/report"
)

var _ = Describe("FilterDay", func() {
	day := caldate.CalendarDate{Year: 2024, Month: time.March, Day: 5}

	rec := func(date, item string) feed.ScanRecord {
		return feed.ScanRecord{Date: date, Item: item, Client: "Acme", Department: "Mach", Qty: "10"}
	}

	It("keeps exactly the records matching the day", func() {
		records := []feed.ScanRecord{
			rec("2024-03-05", "Bolt"),
			rec("2024-03-04", "Nut"),
			rec("2024-03-06", "Washer"),
		}

		matched := report.FilterDay(records, day, manila)
		Expect(matched).To(HaveLen(1))
		Expect(matched[0].Item).To(Equal("Bolt"))
	})

	It("treats slash and dash formats as interchangeable", func() {
		dashed := []feed.ScanRecord{rec("2024-03-05", "Bolt")}
		slashed := []feed.ScanRecord{rec("03/05/2024", "Bolt")}

		Expect(report.FilterDay(dashed, day, manila)).To(HaveLen(1))
		Expect(report.FilterDay(slashed, day, manila)).To(HaveLen(1))
	})

	It("preserves the original relative order", func() {
		records := []feed.ScanRecord{
			rec("2024-03-05", "C"),
			rec("2024-03-04", "skip"),
			rec("2024-03-05", "A"),
			rec("2024-03-05", "B"),
		}

		matched := report.FilterDay(records, day, manila)
		Expect(matched).To(HaveLen(3))
		Expect([]string{matched[0].Item, matched[1].Item, matched[2].Item}).
			To(Equal([]string{"C", "A", "B"}))
	})

	It("excludes records with a missing date", func() {
		records := []feed.ScanRecord{
			rec("", "no-date"),
			rec("2024-03-05", "Bolt"),
		}

		matched := report.FilterDay(records, day, manila)
		Expect(matched).To(HaveLen(1))
		Expect(matched[0].Item).To(Equal("Bolt"))
	})

	It("excludes unparseable dates without aborting the filter", func() {
		records := []feed.ScanRecord{
			rec("garbage", "bad"),
			rec("2024-03-05", "Bolt"),
			rec("13/40/2024", "worse"),
		}

		matched := report.FilterDay(records, day, manila)
		Expect(matched).To(HaveLen(1))
		Expect(matched[0].Item).To(Equal("Bolt"))
	})

	It("strips backslash escape artifacts before comparing", func() {
		records := []feed.ScanRecord{rec(`2024\-03\-05`, "Bolt")}
		Expect(report.FilterDay(records, day, manila)).To(HaveLen(1))
	})

	It("returns an empty slice, not an error, when nothing matches", func() {
		records := []feed.ScanRecord{rec("2024-01-01", "old")}
		Expect(report.FilterDay(records, day, manila)).To(BeEmpty())
		Expect(report.FilterDay(nil, day, manila)).To(BeEmpty())
	})
})
