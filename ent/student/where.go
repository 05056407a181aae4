// Code generated by ent, DO NOT EDIT.

package student

import (
	"entgo.io/ent/dialect/sql"
	"github.com/apatel/gradpath/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldEmail, v))
}

// Netid applies equality check predicate on the "netid" field. It's identical to NetidEQ.
func Netid(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldNetid, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldYear, v))
}

// Major applies equality check predicate on the "major" field. It's identical to MajorEQ.
func Major(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldMajor, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldEmail, v))
}

// NetidEQ applies the EQ predicate on the "netid" field.
func NetidEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldNetid, v))
}

// NetidNEQ applies the NEQ predicate on the "netid" field.
func NetidNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldNetid, v))
}

// NetidIn applies the In predicate on the "netid" field.
func NetidIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldNetid, vs...))
}

// NetidNotIn applies the NotIn predicate on the "netid" field.
func NetidNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldNetid, vs...))
}

// NetidGT applies the GT predicate on the "netid" field.
func NetidGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldNetid, v))
}

// NetidGTE applies the GTE predicate on the "netid" field.
func NetidGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldNetid, v))
}

// NetidLT applies the LT predicate on the "netid" field.
func NetidLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldNetid, v))
}

// NetidLTE applies the LTE predicate on the "netid" field.
func NetidLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldNetid, v))
}

// NetidContains applies the Contains predicate on the "netid" field.
func NetidContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldNetid, v))
}

// NetidHasPrefix applies the HasPrefix predicate on the "netid" field.
func NetidHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldNetid, v))
}

// NetidHasSuffix applies the HasSuffix predicate on the "netid" field.
func NetidHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldNetid, v))
}

// NetidEqualFold applies the EqualFold predicate on the "netid" field.
func NetidEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldNetid, v))
}

// NetidContainsFold applies the ContainsFold predicate on the "netid" field.
func NetidContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldNetid, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldName, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldYear, v))
}

// YearContains applies the Contains predicate on the "year" field.
func YearContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldYear, v))
}

// YearHasPrefix applies the HasPrefix predicate on the "year" field.
func YearHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldYear, v))
}

// YearHasSuffix applies the HasSuffix predicate on the "year" field.
func YearHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldYear, v))
}

// YearEqualFold applies the EqualFold predicate on the "year" field.
func YearEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldYear, v))
}

// YearContainsFold applies the ContainsFold predicate on the "year" field.
func YearContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldYear, v))
}

// MajorEQ applies the EQ predicate on the "major" field.
func MajorEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldEQ(FieldMajor, v))
}

// MajorNEQ applies the NEQ predicate on the "major" field.
func MajorNEQ(v string) predicate.Student {
	return predicate.Student(sql.FieldNEQ(FieldMajor, v))
}

// MajorIn applies the In predicate on the "major" field.
func MajorIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldIn(FieldMajor, vs...))
}

// MajorNotIn applies the NotIn predicate on the "major" field.
func MajorNotIn(vs ...string) predicate.Student {
	return predicate.Student(sql.FieldNotIn(FieldMajor, vs...))
}

// MajorGT applies the GT predicate on the "major" field.
func MajorGT(v string) predicate.Student {
	return predicate.Student(sql.FieldGT(FieldMajor, v))
}

// MajorGTE applies the GTE predicate on the "major" field.
func MajorGTE(v string) predicate.Student {
	return predicate.Student(sql.FieldGTE(FieldMajor, v))
}

// MajorLT applies the LT predicate on the "major" field.
func MajorLT(v string) predicate.Student {
	return predicate.Student(sql.FieldLT(FieldMajor, v))
}

// MajorLTE applies the LTE predicate on the "major" field.
func MajorLTE(v string) predicate.Student {
	return predicate.Student(sql.FieldLTE(FieldMajor, v))
}

// MajorContains applies the Contains predicate on the "major" field.
func MajorContains(v string) predicate.Student {
	return predicate.Student(sql.FieldContains(FieldMajor, v))
}

// MajorHasPrefix applies the HasPrefix predicate on the "major" field.
func MajorHasPrefix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasPrefix(FieldMajor, v))
}

// MajorHasSuffix applies the HasSuffix predicate on the "major" field.
func MajorHasSuffix(v string) predicate.Student {
	return predicate.Student(sql.FieldHasSuffix(FieldMajor, v))
}

// MajorEqualFold applies the EqualFold predicate on the "major" field.
func MajorEqualFold(v string) predicate.Student {
	return predicate.Student(sql.FieldEqualFold(FieldMajor, v))
}

// MajorContainsFold applies the ContainsFold predicate on the "major" field.
func MajorContainsFold(v string) predicate.Student {
	return predicate.Student(sql.FieldContainsFold(FieldMajor, v))
}

// InterestsIsNil applies the IsNil predicate on the "interests" field.
func InterestsIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldInterests))
}

// InterestsNotNil applies the NotNil predicate on the "interests" field.
func InterestsNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldInterests))
}

// CompletedCoursesIsNil applies the IsNil predicate on the "completed_courses" field.
func CompletedCoursesIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldCompletedCourses))
}

// CompletedCoursesNotNil applies the NotNil predicate on the "completed_courses" field.
func CompletedCoursesNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldCompletedCourses))
}

// PlannedSemestersIsNil applies the IsNil predicate on the "planned_semesters" field.
func PlannedSemestersIsNil() predicate.Student {
	return predicate.Student(sql.FieldIsNull(FieldPlannedSemesters))
}

// PlannedSemestersNotNil applies the NotNil predicate on the "planned_semesters" field.
func PlannedSemestersNotNil() predicate.Student {
	return predicate.Student(sql.FieldNotNull(FieldPlannedSemesters))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Student) predicate.Student {
	return predicate.Student(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Student) predicate.Student {
	return predicate.Student(sql.NotPredicates(p))
}
