package cmd

import (
	"fmt"
	"strings"

	"github.com/apatel/gradpath/internal/planner"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the student's semester plans",
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show planned courses by semester",
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

		if len(snap.PlannedSemesters) == 0 {
			fmt.Println("No semesters planned yet. Add one with 'gradpath plan set'.")
			return nil
		}

		var total int
		for _, p := range snap.PlannedSemesters {
			fmt.Println(headingStyle.Render(p.Semester))
			for _, c := range p.Courses {
				fmt.Printf("  %s  %-45s %d cr\n", codeStyle.Render(fmt.Sprintf("%-14s", c.Code)), c.Title, c.Credits)
				total += c.Credits
			}
		}
		fmt.Printf("\nTotal planned credits: %d\n", total)
		return nil
	},
}

var planSetCmd = &cobra.Command{
	Use:   "set <semester> <course>...",
	Short: "Replace the course list for one semester",
	Long: "Replaces the plan for a semester. Each course argument is either a\n" +
		"plain code (\"CSCI-UA.0102\") or a full entry\n" +
		"(\"CSCI-UA.0102 Data Structures (4 credits)\").",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		semester, courseArgs := args[0], args[1:]

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		snap, err := loadStudent(cmd, s)
		if err != nil {
			return err
		}

		// Bare codes are expanded from the catalog so entries carry a
		// title and credit count.
		entries := make([]string, 0, len(courseArgs))
		for _, arg := range courseArgs {
			if _, ok := planner.ParseCourseString(arg); ok {
				entries = append(entries, arg)
				continue
			}
			c, err := s.CourseRepo().Get(cmd.Context(), strings.TrimSpace(arg))
			if err != nil {
				return fmt.Errorf("look up %s: %w", arg, err)
			}
			if c == nil {
				fmt.Println(warnStyle.Render(fmt.Sprintf("Skipping %q: not a course entry or catalog code.", arg)))
				continue
			}
			entries = append(entries, fmt.Sprintf("%s %s (%s credits)", c.Code, c.Title, c.Credits.String()))
		}

		plans := planner.Upsert(snap.PlannedSemesters, semester, entries)
		if err := s.StudentRepo().SetPlans(cmd.Context(), snap.Email, plans); err != nil {
			return err
		}

		courses := planner.PlanFor(plans, semester)
		fmt.Printf("Planned %d courses for %s:\n", len(courses), semester)
		for _, c := range courses {
			fmt.Printf("  %s\n", planner.FormatCourseString(c))
		}
		return nil
	},
}

func init() {
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planSetCmd)
}
