package models

// Department enum. Empty string means unassigned.
type Department string

const (
	PublicWorks   Department = "Public Works"
	Sanitation    Department = "Sanitation"
	Electrical    Department = "Electrical"
	TrafficPolice Department = "Traffic Police"
	Drainage      Department = "Drainage & Sewage"
	Horticulture  Department = "Horticulture"
)

// Departments lists every assignable department.
var Departments = []Department{
	PublicWorks, Sanitation, Electrical,
	TrafficPolice, Drainage, Horticulture,
}

// ValidDepartment reports whether s names a known department. The
// empty string is valid and clears the assignment.
func ValidDepartment(s string) bool {
	if s == "" {
		return true
	}
	for _, d := range Departments {
		if string(d) == s {
			return true
		}
	}
	return false
}
