// Package report renders patient status reports as self-contained HTML
// documents suitable for printing or archival.
package report

import (
	"bytes"
	"html/template"
	"time"
)

// PatientStatus is the data backing a single patient report.
type PatientStatus struct {
	GeneratedAt time.Time

	FirstName string
	LastName  string
	Email     string
	Age       int
	BloodType string
	State     string

	PCRRequired bool
	CRRatio     *float64

	Department *DepartmentStatus
	Doctors    []DoctorLine
	Activity   []ActivityLine
}

// DepartmentStatus summarizes the patient's current department.
type DepartmentStatus struct {
	Name     string
	IsOpen   bool
	Capacity int
	Occupied int
}

type DoctorLine struct {
	Name           string
	Specialization string
}

type ActivityLine struct {
	At          time.Time
	LogType     string
	Priority    string
	Description string
}

var patientTemplate = template.Must(template.New("patient_status").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Patient Status: {{.FirstName}} {{.LastName}}</title>
<style>
body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: #333; max-width: 800px; margin: 0 auto; padding: 24px; }
h1 { font-size: 22px; border-bottom: 2px solid #2563eb; padding-bottom: 8px; }
h2 { font-size: 16px; margin-top: 24px; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #e5e7eb; padding: 6px 10px; text-align: left; font-size: 14px; }
.meta { color: #6b7280; font-size: 12px; }
</style>
</head>
<body>
<h1>Patient Status: {{.FirstName}} {{.LastName}}</h1>
<p class="meta">Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}</p>

<h2>Record</h2>
<table>
<tr><th>Email</th><td>{{.Email}}</td></tr>
<tr><th>Age</th><td>{{.Age}}</td></tr>
{{if .BloodType}}<tr><th>Blood type</th><td>{{.BloodType}}</td></tr>{{end}}
<tr><th>State</th><td>{{.State}}</td></tr>
<tr><th>PCR required</th><td>{{if .PCRRequired}}yes{{else}}no{{end}}</td></tr>
{{if .CRRatio}}<tr><th>CR ratio</th><td>{{.CRRatio}}</td></tr>{{end}}
</table>

{{if .Department}}
<h2>Department</h2>
<table>
<tr><th>Name</th><td>{{.Department.Name}}</td></tr>
<tr><th>Status</th><td>{{if .Department.IsOpen}}open{{else}}closed{{end}}</td></tr>
<tr><th>Occupancy</th><td>{{.Department.Occupied}}{{if .Department.Capacity}} / {{.Department.Capacity}}{{end}}</td></tr>
</table>
{{end}}

{{if .Doctors}}
<h2>Care Team</h2>
<table>
<tr><th>Doctor</th><th>Specialization</th></tr>
{{range .Doctors}}<tr><td>{{.Name}}</td><td>{{.Specialization}}</td></tr>
{{end}}</table>
{{end}}

{{if .Activity}}
<h2>Activity</h2>
<table>
<tr><th>When</th><th>Type</th><th>Priority</th><th>Entry</th></tr>
{{range .Activity}}<tr><td>{{.At.Format "2006-01-02 15:04"}}</td><td>{{.LogType}}</td><td>{{.Priority}}</td><td>{{.Description}}</td></tr>
{{end}}</table>
{{end}}
</body>
</html>
`))

// RenderPatientStatus renders the report to HTML.
func RenderPatientStatus(data PatientStatus) (string, error) {
	var buf bytes.Buffer
	if err := patientTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
