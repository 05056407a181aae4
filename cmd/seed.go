package cmd

import (
	"fmt"

	"github.com/apatel/gradpath/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample course catalog and student profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		if err := s.Seed(ctx); err != nil {
			return err
		}

		n, err := s.CourseRepo().Count(ctx)
		if err != nil {
			return fmt.Errorf("count courses: %w", err)
		}

		fmt.Printf("Seeded %d courses and %d students.\n", n, len(store.SeedStudents()))
		return nil
	},
}
