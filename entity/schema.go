package entity

import "github.com/invopop/jsonschema"

// Schemas reflects the four record shapes into JSON Schema documents,
// keyed by collection name. Served by GET /schema for viewer tooling.
func Schemas() map[string]*jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}

	return map[string]*jsonschema.Schema{
		"campususer":         r.Reflect(&CampusUser{}),
		"event":              r.Reflect(&Event{}),
		"attendancerecord":   r.Reflect(&AttendanceRecord{}),
		"attendanceoverride": r.Reflect(&AttendanceOverride{}),
	}
}
