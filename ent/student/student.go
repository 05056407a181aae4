// Code generated by ent, DO NOT EDIT.

package student

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the student type in the database.
	Label = "student"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldNetid holds the string denoting the netid field in the database.
	FieldNetid = "netid"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldMajor holds the string denoting the major field in the database.
	FieldMajor = "major"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// FieldCompletedCourses holds the string denoting the completed_courses field in the database.
	FieldCompletedCourses = "completed_courses"
	// FieldPlannedSemesters holds the string denoting the planned_semesters field in the database.
	FieldPlannedSemesters = "planned_semesters"
	// Table holds the table name of the student in the database.
	Table = "students"
)

// Columns holds all SQL columns for student fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldNetid,
	FieldName,
	FieldYear,
	FieldMajor,
	FieldInterests,
	FieldCompletedCourses,
	FieldPlannedSemesters,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultNetid holds the default value on creation for the "netid" field.
	DefaultNetid string
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultYear holds the default value on creation for the "year" field.
	DefaultYear string
	// DefaultMajor holds the default value on creation for the "major" field.
	DefaultMajor string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Student queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByNetid orders the results by the netid field.
func ByNetid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetid, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByMajor orders the results by the major field.
func ByMajor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMajor, opts...).ToFunc()
}
