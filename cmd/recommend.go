package cmd

import (
	"context"
	"fmt"

	"github.com/apatel/gradpath/internal/llm"
	"github.com/apatel/gradpath/internal/recommend"
	"github.com/apatel/gradpath/internal/store"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <semester>",
	Short: "Get AI course recommendations for a semester",
	Long: "Asks the configured LLM provider for 4-6 courses for the given semester,\n" +
		"grounded in the student's major progress and the eligibility-filtered catalog.",
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
		if len(courses) == 0 {
			return fmt.Errorf("catalog is empty; run 'gradpath seed' first")
		}

		cfg, provider, err := buildProvider(cmd.Context(), s)
		if err != nil {
			return err
		}

		careerPath, _ := cmd.Flags().GetString("career")
		sideInterests, _ := cmd.Flags().GetStringSlice("side-interests")

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		fmt.Println(dimStyle.Render(fmt.Sprintf("Asking %s for recommendations...", provider.ModelID())))

		svc := recommend.NewService(provider, recommend.DefaultConfig())
		recs, err := svc.Recommend(ctx, recommend.Input{
			Student:       *snap,
			Semester:      semester,
			CareerPath:    careerPath,
			SideInterests: sideInterests,
			Courses:       courses,
		})
		if err != nil {
			return err
		}

		fmt.Println(headingStyle.Render(fmt.Sprintf("Recommended for %s", semester)))
		var total int
		for _, r := range recs {
			fmt.Printf("\n%s  %s (%d credits)\n", codeStyle.Render(r.Code), r.Title, r.Credits)
			fmt.Println(dimStyle.Render("  " + r.Reasoning))
			total += r.Credits
		}
		fmt.Printf("\n%d courses, %d credits total.\n", len(recs), total)
		return nil
	},
}

// buildProvider creates the LLM provider from GRADPATH_* configuration,
// falling back to the providers' own conventional API key env vars.
func buildProvider(ctx context.Context, s *store.Store) (llm.Config, llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
	if err != nil {
		return llm.Config{}, nil, err
	}
	return cfg, provider, nil
}

func init() {
	recommendCmd.Flags().String("career", "", "Intended career path (e.g. \"Machine Learning\")")
	recommendCmd.Flags().StringSlice("side-interests", nil, "Comma-separated side interests")
}
