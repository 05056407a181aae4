package cmd

import (
	"fmt"
	"strings"

	"github.com/apatel/gradpath/internal/major"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the student's progress toward their major",
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
		if snap.Major == "" {
			return fmt.Errorf("%s has no declared major; set one with 'gradpath student set --major ...'", snap.Email)
		}

		courses, err := s.CourseRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		completed := snap.CompletedSet()

		p, ok := major.ComputeProgress(snap.Major, completed, courses)
		if !ok {
			return fmt.Errorf("no requirement definition for major %q (supported: %s)",
				snap.Major, strings.Join(major.Supported(), ", "))
		}

		fmt.Println(headingStyle.Render(fmt.Sprintf("%s — %s", snap.Name, p.Major)))
		fmt.Printf("Overall:    %s (%d of %d requirements)\n",
			okStyle.Render(fmt.Sprintf("%.2f%%", p.Percentage)), p.CompletedCount, p.RequiredCount)
		fmt.Printf("Core:       %d/%d completed\n", p.Core.Count, p.Core.Total)
		fmt.Printf("Electives:  %d completed, %d still needed\n",
			len(p.Electives.Completed), p.Electives.RemainingCount)
		if len(p.Electives.SubstitutionsUsed) > 0 {
			fmt.Printf("Substitutions used: %s (max %d)\n",
				strings.Join(p.Electives.SubstitutionsUsed, ", "), p.Electives.MaxSubstitutions)
		}

		r, _ := major.ComputeRemaining(snap.Major, completed, courses)
		if len(r.Core) > 0 {
			fmt.Println("\nRemaining core requirements:")
			for _, req := range r.Core {
				line := fmt.Sprintf("  %s  %s", codeStyle.Render(req.Code), req.Name)
				if req.Notes != "" {
					line += dimStyle.Render("  (" + req.Notes + ")")
				}
				fmt.Println(line)
			}
		}
		if r.Electives.CountNeeded > 0 && len(r.Electives.Available) > 0 {
			fmt.Printf("\nElective options in the catalog (%d needed):\n", r.Electives.CountNeeded)
			for _, c := range r.Electives.Available {
				fmt.Printf("  %s  %s\n", codeStyle.Render(c.Code), c.Title)
			}
		}
		return nil
	},
}
