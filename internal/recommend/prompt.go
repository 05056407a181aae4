package recommend

import (
	"fmt"
	"strings"

	"github.com/apatel/gradpath/internal/catalog"
	"github.com/apatel/gradpath/internal/major"
)

const maxPromptCourses = 50
const maxPromptCoreCourses = 5

const systemPrompt = `You are an expert academic advisor at NYU specializing in course planning and
curriculum design. Your role is to help students create balanced, strategic course schedules
that align with their academic goals, career aspirations, and major requirements.

You understand:
- NYU course structures, prerequisites, and difficulty levels
- Major requirement progressions and optimal sequencing
- Workload balancing and difficulty distribution
- Career path alignment with course selection
- Prerequisite chains and course dependencies

Provide thoughtful, personalized recommendations that consider the student's unique situation.`

// buildUserMessage assembles the single user turn: student profile, major
// progress, remaining requirements, available courses, and instructions.
// progress and remaining may be nil when the major is unknown.
func buildUserMessage(in Input, available []catalog.Course, progress *major.Progress, remaining *major.Remaining, cfg Config) string {
	var b strings.Builder

	name := in.Student.Name
	if name == "" {
		name = "the student"
	}

	fmt.Fprintf(&b, "Please recommend 4-6 courses for %s for %s.\n\n", name, in.Semester)

	b.WriteString("STUDENT PROFILE:\n")
	fmt.Fprintf(&b, "- **MAJOR: %s** (CRITICAL: All recommendations must align with this major)\n", orDefault(in.Student.Major, "Undeclared"))
	fmt.Fprintf(&b, "- Year: %s\n", orDefault(in.Student.Year, "Unknown"))
	fmt.Fprintf(&b, "- Career Path: %s\n", orDefault(in.CareerPath, "Not specified"))
	fmt.Fprintf(&b, "- Interests: %s\n", joinOr(in.Student.Interests, "Not specified"))
	fmt.Fprintf(&b, "- Side Interests: %s\n", joinOr(in.SideInterests, "None"))
	fmt.Fprintf(&b, "- Completed Courses: %s\n\n", joinOr(in.Student.CompletedCourses, "None"))

	if progress != nil {
		b.WriteString("MAJOR PROGRESS:\n")
		fmt.Fprintf(&b, "- Overall Progress: %.4g%% complete\n", progress.Percentage)
		fmt.Fprintf(&b, "- Core Requirements: %d/%d completed\n", progress.Core.Count, progress.Core.Total)
		fmt.Fprintf(&b, "- Electives: %d completed, %d still needed\n\n",
			len(progress.Electives.Completed), progress.Electives.RemainingCount)
	}

	if remaining != nil {
		if len(remaining.Core) > 0 {
			b.WriteString("REMAINING CORE REQUIREMENTS:\n")
			for i, req := range remaining.Core {
				if i >= maxPromptCoreCourses {
					break
				}
				fmt.Fprintf(&b, "  - %s: %s\n", req.Code, req.Name)
			}
			b.WriteString("\n")
		}
		if remaining.Electives.CountNeeded > 0 {
			fmt.Fprintf(&b, "ELECTIVES NEEDED: %d more required\n\n", remaining.Electives.CountNeeded)
		}
	}

	fmt.Fprintf(&b, "AVAILABLE COURSES (%d total):\n", len(available))
	for i, c := range available {
		if i >= maxPromptCourses {
			break
		}
		b.WriteString(formatCourse(c))
		b.WriteString("\n")
	}
	if extra := len(available) - maxPromptCourses; extra > 0 {
		fmt.Fprintf(&b, "\n... and %d more courses available.\n", extra)
	}

	fmt.Fprintf(&b, `
CRITICAL RECOMMENDATION PRIORITIES (in order of importance):
1. MAJOR ALIGNMENT (HIGHEST PRIORITY):
   The student's major is: %q
   Strongly prioritize courses that fulfill the declared major's requirements.
   Focus on remaining core requirements first, then electives that support the career path.
   Courses from other departments are acceptable when they directly support the
   student's interests or career path, as long as major requirements are still
   being prioritized and completed.

2. CAREER PATH ALIGNMENT (HIGH PRIORITY):
   The student's intended career path is: %q
   Within the major, prioritize courses that directly support this career path.
   Do not recommend generic courses when career-specific courses within the major are available.

3. SIDE INTERESTS (MEDIUM PRIORITY):
   The student has expressed interest in: %s
   Include 1-2 courses that align with these side interests for a well-rounded schedule.
   Cross-department courses that support a stated interest are valuable and should be
   included, provided major requirements remain on track. If side interests are
   specified, make sure at least one recommended course connects to them.

4. Difficulty Balance: Mix easy (1-2), medium (3), and challenging (4-5) courses.
5. Course Sequencing: Ensure logical progression and prerequisite satisfaction.

IMPORTANT CONSTRAINTS:
- DO NOT recommend courses the student has already completed: %s
- DO NOT recommend courses already planned for any semester
- The available courses list has already been filtered to exclude completed and planned courses
- Recommend 4-6 courses (aim for %d-%d total credits)
- All prerequisites are already satisfied (already filtered, but double-check)

Return a JSON object matching the response schema. Provide thoughtful reasoning for
each recommendation that explicitly connects the course to the student's career path
and interests.`,
		orDefault(in.Student.Major, "Undeclared"),
		orDefault(in.CareerPath, "Not specified"),
		joinOr(in.SideInterests, "none specified"),
		joinOr(in.Student.CompletedCourses, "None"),
		cfg.minCredits(), cfg.maxCredits())

	return b.String()
}

// formatCourse renders one catalog record as a prompt bullet.
func formatCourse(c catalog.Course) string {
	prereq := "None"
	if codes := c.Prereq.Codes(); len(codes) > 0 {
		prereq = strings.Join(codes, ", ")
	}

	offered := "Unknown"
	if len(c.SemestersOffered) > 0 {
		terms := make([]string, len(c.SemestersOffered))
		for i, s := range c.SemestersOffered {
			terms[i] = string(s)
		}
		offered = strings.Join(terms, ", ")
	}

	desc := c.Description
	if len(desc) > 200 {
		desc = desc[:200] + "..."
	}

	return fmt.Sprintf(`  - %s: %s
    Credits: %s | Difficulty: %d/5
    Prerequisites: %s
    Offered: %s
    Description: %s`,
		c.Code, c.Title, c.Credits.String(), c.Difficulty, prereq, offered, desc)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
