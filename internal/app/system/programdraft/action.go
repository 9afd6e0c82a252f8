// Package programdraft edits a CourseProgram draft through pure reducer
// functions. A draft is a plain models.CourseProgram value; every edit is an
// Action, and Apply returns the next draft without touching the previous one.
package programdraft

import (
	"errors"
	"fmt"
)

// Op is the kind of mutation an Action performs.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

// Collection names, matching the JSON keys of the program document.
const (
	Program        = "program"
	AdmissionSteps = "admissionSteps"
	Curriculum     = "curriculum"
	Semesters      = "semesters"
	Subjects       = "subjects"
	SoftwareTools  = "softwareTools"
	CareerPaths    = "careerPaths"
	Roles          = "roles"
	FeeStructure   = "feeStructure"
	EMIOptions     = "emiOptions"
	CouponCodes    = "couponCodes"
)

// ErrBadAction is returned for actions that name an unknown collection, an
// unsupported op, or the wrong number of parent indices.
var ErrBadAction = errors.New("invalid action")

// Action is one field-path mutation of a draft.
//
// Parent holds the indices of the enclosing elements: one index (the year)
// for semesters, two (year, semester) for subjects, one (the career path)
// for roles. Index addresses the element inside the target collection and is
// ignored by OpAdd. For string collections (subjects, roles) Value is the
// whole element and Field is ignored.
type Action struct {
	Op         Op     `json:"op" bson:"op"`
	Collection string `json:"collection" bson:"collection"`
	Parent     []int  `json:"parent,omitempty" bson:"parent,omitempty"`
	Index      int    `json:"index" bson:"index"`
	Field      string `json:"field,omitempty" bson:"field,omitempty"`
	Value      string `json:"value,omitempty" bson:"value,omitempty"`
}

func (a Action) String() string {
	return fmt.Sprintf("%s %s%v[%d].%s", a.Op, a.Collection, a.Parent, a.Index, a.Field)
}

func badAction(a Action, reason string) error {
	return fmt.Errorf("%w: %s (%s)", ErrBadAction, reason, a)
}

// parentDepth is the number of parent indices each collection needs.
var parentDepth = map[string]int{
	Program:        0,
	AdmissionSteps: 0,
	Curriculum:     0,
	Semesters:      1,
	Subjects:       2,
	SoftwareTools:  0,
	CareerPaths:    0,
	Roles:          1,
	EMIOptions:     0,
	CouponCodes:    0,
}

// roots maps each collection to the top-level program key that the backend
// replaces when it is persisted.
var roots = map[string]string{
	AdmissionSteps: AdmissionSteps,
	Curriculum:     Curriculum,
	Semesters:      Curriculum,
	Subjects:       Curriculum,
	SoftwareTools:  SoftwareTools,
	CareerPaths:    CareerPaths,
	Roles:          CareerPaths,
	FeeStructure:   FeeStructure,
	EMIOptions:     FeeStructure,
	CouponCodes:    FeeStructure,
}

// Roots lists the top-level collections that can be persisted on their own.
var Roots = []string{AdmissionSteps, Curriculum, SoftwareTools, CareerPaths, FeeStructure}

// Root returns the persistable top-level collection that owns collection.
func Root(collection string) (string, bool) {
	r, ok := roots[collection]
	return r, ok
}
