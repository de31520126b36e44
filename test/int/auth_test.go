package int

import (
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Demo login", func() {
	BeforeEach(func() {
		cleanupMongo()
	})

	Specify("happy path - creates a user on first login", func() {
		code, user := post("/auth/demo-login", map[string]interface{}{
			"role":  "student",
			"name":  "test",
			"email": "test@test.test",
			"roll":  "R1",
		})

		Expect(code).To(Equal(http.StatusOK))
		Expect(user["id"]).NotTo(BeEmpty())
		Expect(user["role"]).To(Equal("student"))
		Expect(user["email"]).To(Equal("test@test.test"))
		Expect(user["roll"]).To(Equal("R1"))
		Expect(user["updated_at"]).NotTo(BeEmpty())
	})

	Specify("two logins with one email converge to one record", func() {
		code, first := post("/auth/demo-login", map[string]interface{}{
			"role":  "student",
			"name":  "test",
			"email": "test@test.test",
		})
		Expect(code).To(Equal(http.StatusOK))

		code, second := post("/auth/demo-login", map[string]interface{}{
			"role":   "teacher",
			"name":   "renamed",
			"email":  "test@test.test",
			"mobile": "12345",
		})
		Expect(code).To(Equal(http.StatusOK))

		By("same record, second payload's fields")
		Expect(second["id"]).To(Equal(first["id"]))
		Expect(second["role"]).To(Equal("teacher"))
		Expect(second["name"]).To(Equal("renamed"))
		Expect(second["mobile"]).To(Equal("12345"))
	})
})
