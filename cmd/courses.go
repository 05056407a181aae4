package cmd

import (
	"fmt"
	"strings"

	"github.com/apatel/gradpath/internal/catalog"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		courses, err := s.CourseRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		shown := 0
		for _, c := range courses {
			if subject != "" && !strings.EqualFold(c.Subject, subject) {
				continue
			}
			printCourseLine(c)
			shown++
		}

		if shown == 0 {
			fmt.Println("No courses found. Run 'gradpath seed' to load the sample catalog.")
			return nil
		}
		fmt.Printf("\n%d courses.\n", shown)
		return nil
	},
}

func printCourseLine(c catalog.Course) {
	prereq := "none"
	if codes := c.Prereq.Codes(); len(codes) > 0 {
		sep := " or "
		if c.Prereq.Logic() == catalog.LogicAnd {
			sep = " and "
		}
		prereq = strings.Join(codes, sep)
	}

	terms := make([]string, len(c.SemestersOffered))
	for i, t := range c.SemestersOffered {
		terms[i] = string(t)
	}

	fmt.Printf("%s  %-45s %s cr  %s\n",
		codeStyle.Render(fmt.Sprintf("%-14s", c.Code)),
		c.Title,
		c.Credits.String(),
		dimStyle.Render(fmt.Sprintf("prereq: %s | offered: %s", prereq, strings.Join(terms, ", "))),
	)
}

func init() {
	coursesCmd.Flags().String("subject", "", "Filter by subject code (e.g. CSCI-UA)")
}
