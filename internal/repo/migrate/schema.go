// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "capacity", Type: field.TypeInt, Default: 0},
		{Name: "is_open", Type: field.TypeBool, Default: true},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "department_name",
				Unique:  false,
				Columns: []*schema.Column{DepartmentsColumns[3]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 120},
		{Name: "last_name", Type: field.TypeString, Size: 120},
		{Name: "specialization", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "license_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_last_name_first_name",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[4], DoctorsColumns[3]},
			},
		},
	}
	// PartnersColumns holds the columns for the "partners" table.
	PartnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "tax_id", Type: field.TypeString, Size: 50},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true, Nullable: true},
	}
	// PartnersTable holds the schema information for the "partners" table.
	PartnersTable = &schema.Table{
		Name:       "partners",
		Columns:    PartnersColumns,
		PrimaryKey: []*schema.Column{PartnersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "partners_patients_partner",
				Columns:    []*schema.Column{PartnersColumns[7]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "partner_email",
				Unique:  false,
				Columns: []*schema.Column{PartnersColumns[4]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 120},
		{Name: "last_name", Type: field.TypeString, Size: 120},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "birth_date", Type: field.TypeTime},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "medical_history", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "blood_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
		{Name: "pcr_required", Type: field.TypeBool, Default: false},
		{Name: "cr_ratio", Type: field.TypeFloat64, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"undetermined", "good", "fair", "serious"}, Default: "undetermined"},
		{Name: "department_id", Type: field.TypeUUID, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_departments_patients",
				Columns:    []*schema.Column{PatientsColumns[14]},
				RefColumns: []*schema.Column{DepartmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_email",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[6]},
			},
			{
				Name:    "patient_department_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[14]},
			},
			{
				Name:    "patient_state",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[13]},
			},
		},
	}
	// PatientLogsColumns holds the columns for the "patient_logs" table.
	PatientLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "log_type", Type: field.TypeEnum, Enums: []string{"creation", "state_change", "department_change", "doctor_assignment", "medical_update", "system_note", "manual_entry"}, Default: "manual_entry"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "critical"}, Default: "normal"},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// PatientLogsTable holds the schema information for the "patient_logs" table.
	PatientLogsTable = &schema.Table{
		Name:       "patient_logs",
		Columns:    PatientLogsColumns,
		PrimaryKey: []*schema.Column{PatientLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_logs_patients_logs",
				Columns:    []*schema.Column{PatientLogsColumns[5]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientlog_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PatientLogsColumns[5], PatientLogsColumns[1]},
			},
		},
	}
	// PatientDoctorsColumns holds the columns for the "patient_doctors" table.
	PatientDoctorsColumns = []*schema.Column{
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// PatientDoctorsTable holds the schema information for the "patient_doctors" table.
	PatientDoctorsTable = &schema.Table{
		Name:       "patient_doctors",
		Columns:    PatientDoctorsColumns,
		PrimaryKey: []*schema.Column{PatientDoctorsColumns[0], PatientDoctorsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_doctors_patient_id",
				Columns:    []*schema.Column{PatientDoctorsColumns[0]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "patient_doctors_doctor_id",
				Columns:    []*schema.Column{PatientDoctorsColumns[1]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DepartmentsTable,
		DoctorsTable,
		PartnersTable,
		PatientsTable,
		PatientLogsTable,
		PatientDoctorsTable,
	}
)

func init() {
	PartnersTable.ForeignKeys[0].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = DepartmentsTable
	PatientLogsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientDoctorsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientDoctorsTable.ForeignKeys[1].RefTable = DoctorsTable
}
