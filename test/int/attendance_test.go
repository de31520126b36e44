package int

import (
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Attendance", func() {
	BeforeEach(func() {
		cleanupMongo()
	})

	mark := func(date string, entries ...map[string]interface{}) map[string]interface{} {
		code, res := post("/attendance/mark", map[string]interface{}{
			"date":    date,
			"entries": entries,
		})
		Expect(code).To(Equal(http.StatusOK))

		return res
	}

	Specify("happy path - bulk mark returns count and ids", func() {
		res := mark("2024-05-01",
			map[string]interface{}{"roll": "R1", "status": "present"},
			map[string]interface{}{"roll": "R2", "status": "absent"},
		)

		Expect(res["inserted"]).To(BeEquivalentTo(2))
		Expect(res["ids"]).To(HaveLen(2))
	})

	Specify("recent is descending by date and honors the limit", func() {
		mark("2024-05-01", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-03", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-02", map[string]interface{}{"roll": "R1", "status": "absent"})

		code, records := getList("/attendance/recent?limit=2")
		Expect(code).To(Equal(http.StatusOK))
		Expect(records).To(HaveLen(2))
		Expect(records[0]["attendance_date"]).To(Equal("2024-05-03T00:00:00Z"))
		Expect(records[1]["attendance_date"]).To(Equal("2024-05-02T00:00:00Z"))
		Expect(records[0]["marked_by_role"]).To(Equal("teacher"))
	})

	Specify("summary with no records and no override is all zeros", func() {
		code, res := get("/attendance/summary?roll=R9")

		Expect(code).To(Equal(http.StatusOK))
		Expect(res["presentDays"]).To(BeEquivalentTo(0))
		Expect(res["absentDays"]).To(BeEquivalentTo(0))
		Expect(res["percentage"]).To(BeEquivalentTo(0))
	})

	Specify("summary computes the present ratio", func() {
		mark("2024-05-01", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-02", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-03", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-04", map[string]interface{}{"roll": "R1", "status": "absent"})

		code, res := get("/attendance/summary?roll=R1")

		Expect(code).To(Equal(http.StatusOK))
		Expect(res["roll"]).To(Equal("R1"))
		Expect(res["presentDays"]).To(BeEquivalentTo(3))
		Expect(res["absentDays"]).To(BeEquivalentTo(1))
		Expect(res["percentage"]).To(BeEquivalentTo(75.0))
	})

	Specify("summary rounds to two decimal places", func() {
		mark("2024-05-01", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-02", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-03", map[string]interface{}{"roll": "R1", "status": "absent"})

		code, res := get("/attendance/summary?roll=R1")

		Expect(code).To(Equal(http.StatusOK))
		Expect(res["percentage"]).To(BeEquivalentTo(66.67))
	})

	Specify("a manual override replaces the computed percentage", func() {
		mark("2024-05-01", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-02", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-03", map[string]interface{}{"roll": "R1", "status": "present"})
		mark("2024-05-04", map[string]interface{}{"roll": "R1", "status": "absent"})

		code, override := post("/attendance/manual-percentage", map[string]interface{}{
			"roll":              "R1",
			"manual_percentage": 42.5,
		})
		Expect(code).To(Equal(http.StatusOK))
		Expect(override["roll"]).To(Equal("R1"))
		Expect(override["manual_percentage"]).To(BeEquivalentTo(42.5))

		code, res := get("/attendance/summary?roll=R1")
		Expect(code).To(Equal(http.StatusOK))
		Expect(res["presentDays"]).To(BeEquivalentTo(3))
		Expect(res["absentDays"]).To(BeEquivalentTo(1))
		Expect(res["percentage"]).To(BeEquivalentTo(42.5))
	})

	Specify("setting the override twice keeps one record per roll", func() {
		code, first := post("/attendance/manual-percentage", map[string]interface{}{
			"roll":              "R1",
			"manual_percentage": 10,
		})
		Expect(code).To(Equal(http.StatusOK))

		code, second := post("/attendance/manual-percentage", map[string]interface{}{
			"roll":              "R1",
			"manual_percentage": 90,
		})
		Expect(code).To(Equal(http.StatusOK))
		Expect(second["id"]).To(Equal(first["id"]))
		Expect(second["manual_percentage"]).To(BeEquivalentTo(90))
	})

	Specify("sad path - empty batch inserts nothing", func() {
		code, res := post("/attendance/mark", map[string]interface{}{
			"date":    "2024-05-01",
			"entries": []map[string]interface{}{},
		})
		Expect(code).To(Equal(http.StatusBadRequest))
		Expect(res["detail"]).To(Equal("No entries to mark"))

		codeList, records := getList("/attendance/recent")
		Expect(codeList).To(Equal(http.StatusOK))
		Expect(records).To(BeEmpty())
	})
})
