package int

import (
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ = Describe("Events", func() {
	BeforeEach(func() {
		cleanupMongo()
	})

	createEvent := func(title, date string) map[string]interface{} {
		code, event := post("/events", map[string]interface{}{
			"title": title,
			"date":  date,
		})
		Expect(code).To(Equal(http.StatusOK))
		Expect(event["id"]).NotTo(BeEmpty())

		return event
	}

	Specify("happy path - create defaults the creator role", func() {
		event := createEvent("Open day", "2024-05-01T10:00:00Z")

		Expect(event["title"]).To(Equal("Open day"))
		Expect(event["date"]).To(Equal("2024-05-01T10:00:00Z"))
		Expect(event["created_by_role"]).To(Equal("teacher"))
	})

	Specify("list is ascending by date and honors the limit", func() {
		for i := 5; i >= 1; i-- {
			createEvent(fmt.Sprintf("event %d", i), fmt.Sprintf("2024-05-0%dT10:00:00Z", i))
		}

		code, events := getList("/events?limit=3")
		Expect(code).To(Equal(http.StatusOK))
		Expect(events).To(HaveLen(3))
		Expect(events[0]["title"]).To(Equal("event 1"))
		Expect(events[1]["title"]).To(Equal("event 2"))
		Expect(events[2]["title"]).To(Equal("event 3"))
	})

	Specify("happy path - update replaces the full shape", func() {
		event := createEvent("Open day", "2024-05-01T10:00:00Z")

		code, updated := put("/events/"+event["id"].(string), map[string]interface{}{
			"title":    "Open day (moved)",
			"date":     "2024-05-02T10:00:00Z",
			"location": "aula",
		})

		Expect(code).To(Equal(http.StatusOK))
		Expect(updated["id"]).To(Equal(event["id"]))
		Expect(updated["title"]).To(Equal("Open day (moved)"))
		Expect(updated["date"]).To(Equal("2024-05-02T10:00:00Z"))
		Expect(updated["location"]).To(Equal("aula"))
	})

	Specify("sad path - update of an unknown id writes nothing", func() {
		createEvent("Open day", "2024-05-01T10:00:00Z")

		code, res := put("/events/"+primitive.NewObjectID().Hex(), map[string]interface{}{
			"title": "ghost",
			"date":  "2024-06-01T10:00:00Z",
		})
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(res["detail"]).To(Equal("Event not found"))

		code, events := getList("/events")
		Expect(code).To(Equal(http.StatusOK))
		Expect(events).To(HaveLen(1))
		Expect(events[0]["title"]).To(Equal("Open day"))
	})

	Specify("happy path - delete", func() {
		event := createEvent("Open day", "2024-05-01T10:00:00Z")

		res := map[string]interface{}{}
		codeDel := do(http.MethodDelete, "/events/"+event["id"].(string), nil, &res)
		Expect(codeDel).To(Equal(http.StatusOK))
		Expect(res["deleted"]).To(Equal(true))

		codeList, events := getList("/events")
		Expect(codeList).To(Equal(http.StatusOK))
		Expect(events).To(BeEmpty())
	})

	Specify("sad path - delete of an unknown id", func() {
		codeDel := do(http.MethodDelete, "/events/"+primitive.NewObjectID().Hex(), nil, nil)
		Expect(codeDel).To(Equal(http.StatusNotFound))
	})
})
