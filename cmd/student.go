package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/apatel/gradpath/internal/store"
	"github.com/apatel/gradpath/internal/student"
	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student profiles",
}

var studentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		snap, err := loadStudent(cmd, s)
		if err != nil {
			return err
		}

		fmt.Println(headingStyle.Render(snap.Name))
		fmt.Printf("Email:      %s\n", snap.Email)
		fmt.Printf("NetID:      %s\n", snap.NetID)
		fmt.Printf("Year:       %s\n", snap.Year)
		fmt.Printf("Major:      %s\n", snap.Major)
		fmt.Printf("Interests:  %s\n", strings.Join(snap.Interests, ", "))
		fmt.Printf("Completed:  %s\n", strings.Join(snap.CompletedCourses, ", "))

		if len(snap.PlannedSemesters) > 0 {
			fmt.Println("\nPlanned semesters:")
			for _, p := range snap.PlannedSemesters {
				fmt.Printf("  %s: %d courses\n", p.Semester, len(p.Courses))
			}
		}
		return nil
	},
}

var studentSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update a student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := studentEmail(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		repo := s.StudentRepo()

		snap, err := repo.Get(ctx, email)
		if err != nil {
			return fmt.Errorf("load student: %w", err)
		}
		if snap == nil {
			snap = &student.Snapshot{Email: email}
		}

		if v, _ := cmd.Flags().GetString("name"); v != "" {
			snap.Name = v
		}
		if v, _ := cmd.Flags().GetString("year"); v != "" {
			snap.Year = v
		}
		if v, _ := cmd.Flags().GetString("major"); v != "" {
			snap.Major = v
		}
		if v, _ := cmd.Flags().GetStringSlice("interests"); len(v) > 0 {
			snap.Interests = v
		}
		if v, _ := cmd.Flags().GetStringSlice("completed"); len(v) > 0 {
			snap.CompletedCourses = v
		}

		if err := repo.Upsert(ctx, snap); err != nil {
			return err
		}
		fmt.Printf("Saved profile for %s.\n", email)
		return nil
	},
}

// studentEmail resolves the acting student from --student or
// GRADPATH_STUDENT.
func studentEmail(cmd *cobra.Command) (string, error) {
	if e, _ := cmd.Flags().GetString("student"); e != "" {
		return e, nil
	}
	if e := os.Getenv("GRADPATH_STUDENT"); e != "" {
		return e, nil
	}
	return "", fmt.Errorf("no student selected: pass --student or set GRADPATH_STUDENT")
}

// loadStudent fetches the acting student's profile from the store.
func loadStudent(cmd *cobra.Command, s *store.Store) (*student.Snapshot, error) {
	email, err := studentEmail(cmd)
	if err != nil {
		return nil, err
	}
	snap, err := s.StudentRepo().Get(cmd.Context(), email)
	if err != nil {
		return nil, fmt.Errorf("load student: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("student %s not found: create one with 'gradpath student set'", email)
	}
	return snap, nil
}

func init() {
	studentSetCmd.Flags().String("name", "", "Full name")
	studentSetCmd.Flags().String("year", "", "Academic year (Freshman, Sophomore, Junior, Senior)")
	studentSetCmd.Flags().String("major", "", "Declared major")
	studentSetCmd.Flags().StringSlice("interests", nil, "Comma-separated interests")
	studentSetCmd.Flags().StringSlice("completed", nil, "Comma-separated completed course codes")

	studentCmd.AddCommand(studentShowCmd)
	studentCmd.AddCommand(studentSetCmd)
}
