package int

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"

	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func envOrDefault(env, def string) string {
	if val, ok := os.LookupEnv(env); ok {
		return val
	}

	return def
}

func baseURL() string {
	return envOrDefault("CAMPUS_ADDR", "http://localhost:8080")
}

func cleanupMongo() {
	m, err := mongo.Connect(context.Background(), options.Client().ApplyURI(envOrDefault("DATABASE_URL", "mongodb://localhost:27017")))
	Expect(err).To(BeNil())
	db := m.Database(envOrDefault("DATABASE_NAME", "campus"))

	collections := []string{"campususer", "event", "attendancerecord", "attendanceoverride"}
	for _, v := range collections {
		_, err := db.Collection(v).DeleteMany(context.Background(), bson.M{})
		Expect(err).To(BeNil())
	}
}

// do sends a JSON request to the running service and decodes the JSON
// response into out (a *map[string]interface{} or *[]map[string]interface{}).
func do(method, path string, body interface{}, out interface{}) int {
	var buf bytes.Buffer
	if body != nil {
		Expect(json.NewEncoder(&buf).Encode(body)).To(BeNil())
	}

	req, err := http.NewRequest(method, baseURL()+path, &buf)
	Expect(err).To(BeNil())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	Expect(err).To(BeNil())
	defer res.Body.Close()

	if out != nil {
		Expect(json.NewDecoder(res.Body).Decode(out)).To(BeNil())
	}

	return res.StatusCode
}

func post(path string, body interface{}) (int, map[string]interface{}) {
	out := map[string]interface{}{}
	code := do(http.MethodPost, path, body, &out)
	return code, out
}

func put(path string, body interface{}) (int, map[string]interface{}) {
	out := map[string]interface{}{}
	code := do(http.MethodPut, path, body, &out)
	return code, out
}

func get(path string) (int, map[string]interface{}) {
	out := map[string]interface{}{}
	code := do(http.MethodGet, path, nil, &out)
	return code, out
}

func getList(path string) (int, []map[string]interface{}) {
	out := []map[string]interface{}{}
	code := do(http.MethodGet, path, nil, &out)
	return code, out
}
