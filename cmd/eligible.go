package cmd

import (
	"fmt"

	"github.com/apatel/gradpath/internal/eligibility"
	"github.com/spf13/cobra"
)

var eligibleCmd = &cobra.Command{
	Use:   "eligible <semester>",
	Short: "List courses the student can take in a semester",
	Long: "Filters the catalog to courses the student has not completed, whose\n" +
		"prerequisites are satisfied, and which are offered in the given term\n" +
		"(e.g. \"Sophomore Fall\"). External major requirements are included.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		semester := args[0]

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		snap, err := loadStudent(cmd, s)
		if err != nil {
			return err
		}

		courses, err := s.CourseRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		// Courses planned for earlier semesters count as completed so a
		// later-semester query reflects the plan so far.
		completed := snap.CompletedWithPlanned(semester)

		out := eligibility.ForSemester(completed, semester, courses, snap.Major)

		if !out.TermRecognized {
			fmt.Println(warnStyle.Render(
				fmt.Sprintf("No term (Fall/Spring/Summer) recognized in %q; showing all offerings.", semester)))
		}
		if snap.Major != "" && !out.MajorFound {
			fmt.Println(warnStyle.Render(
				fmt.Sprintf("Major %q has no requirement definition; external requirements omitted.", snap.Major)))
		}

		if len(out.Courses) == 0 {
			fmt.Printf("No eligible courses for %s.\n", semester)
			return nil
		}

		fmt.Println(headingStyle.Render(fmt.Sprintf("Eligible courses for %s (%s)", semester, snap.Name)))
		for _, c := range out.Courses {
			printCourseLine(c)
		}
		fmt.Printf("\n%d courses.\n", len(out.Courses))
		return nil
	},
}
