package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apatel/gradpath/ent"
	entstudent "github.com/apatel/gradpath/ent/student"
	"github.com/apatel/gradpath/internal/planner"
	"github.com/apatel/gradpath/internal/student"
)

// studentRepo implements StudentRepo using the ent client.
type studentRepo struct {
	client *ent.Client
}

func (r *studentRepo) Get(ctx context.Context, email string) (*student.Snapshot, error) {
	row, err := r.client.Student.Query().
		Where(entstudent.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student %s: %w", email, err)
	}
	return snapshotFromEnt(row)
}

func (r *studentRepo) Upsert(ctx context.Context, snap *student.Snapshot) error {
	plans, err := json.Marshal(snap.PlannedSemesters)
	if err != nil {
		return fmt.Errorf("marshal plans: %w", err)
	}

	netid := snap.NetID
	if netid == "" {
		netid = student.NetIDFromEmail(snap.Email)
	}

	existing, err := r.client.Student.Query().
		Where(entstudent.Email(snap.Email)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup student %s: %w", snap.Email, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetNetid(netid).
			SetName(snap.Name).
			SetYear(snap.Year).
			SetMajor(snap.Major).
			SetInterests(snap.Interests).
			SetCompletedCourses(snap.CompletedCourses).
			SetPlannedSemesters(plans).
			Save(ctx)
	} else {
		_, err = r.client.Student.Create().
			SetEmail(snap.Email).
			SetNetid(netid).
			SetName(snap.Name).
			SetYear(snap.Year).
			SetMajor(snap.Major).
			SetInterests(snap.Interests).
			SetCompletedCourses(snap.CompletedCourses).
			SetPlannedSemesters(plans).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("upsert student %s: %w", snap.Email, err)
	}
	return nil
}

func (r *studentRepo) SetPlans(ctx context.Context, email string, plans []planner.SemesterPlan) error {
	raw, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("marshal plans: %w", err)
	}

	n, err := r.client.Student.Update().
		Where(entstudent.Email(email)).
		SetPlannedSemesters(raw).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set plans for %s: %w", email, err)
	}
	if n == 0 {
		return fmt.Errorf("student %s not found", email)
	}
	return nil
}

func snapshotFromEnt(row *ent.Student) (*student.Snapshot, error) {
	snap := &student.Snapshot{
		ID:               row.ID.String(),
		Name:             row.Name,
		NetID:            row.Netid,
		Email:            row.Email,
		Year:             row.Year,
		Major:            row.Major,
		Interests:        row.Interests,
		CompletedCourses: row.CompletedCourses,
	}

	if len(row.PlannedSemesters) > 0 {
		if err := json.Unmarshal(row.PlannedSemesters, &snap.PlannedSemesters); err != nil {
			return nil, fmt.Errorf("decode plans for %s: %w", row.Email, err)
		}
	}

	return snap, nil
}
