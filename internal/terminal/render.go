package terminal

import (
	"fmt"
	"strings"

	"github.com/k1ngs/portfolio-api/internal/domain"
)

// skillBarWidth is the character width of the proficiency bar.
const skillBarWidth = 10

// skillCategoryOrder fixes the section order of the skills listing.
var skillCategoryOrder = []domain.SkillCategory{
	domain.SkillCategoryFrontend,
	domain.SkillCategoryBackend,
	domain.SkillCategoryDatabase,
	domain.SkillCategoryDevOps,
	domain.SkillCategoryMobile,
	domain.SkillCategorySoftSkills,
	domain.SkillCategoryOther,
}

// projectTitle returns the translated title when available.
func projectTitle(p *domain.ResolvedProject) string {
	if p.Translation != nil && p.Translation.Title != "" {
		return p.Translation.Title
	}
	return p.Title
}

// projectDescription returns the translated description when available.
func projectDescription(p *domain.ResolvedProject) string {
	if p.Translation != nil && p.Translation.Description != "" {
		return p.Translation.Description
	}
	return p.Description
}

// projectContent returns the translated long-form content when available.
func projectContent(p *domain.ResolvedProject) string {
	if p.Translation != nil && p.Translation.Content != "" {
		return p.Translation.Content
	}
	return p.Content
}

// renderProjectList formats the numbered project listing.
func renderProjectList(projects []domain.ResolvedProject) string {
	var sb strings.Builder
	sb.WriteString("My Projects\n")

	for n := range projects {
		p := &projects[n]
		fmt.Fprintf(&sb, "\n%d. %s\n   %s\n", n+1, projectTitle(p), projectDescription(p))
		if len(p.Technologies) > 0 {
			fmt.Fprintf(&sb, "   Technologies: %s\n", strings.Join(p.Technologies, ", "))
		}
		if p.GithubURL != "" {
			fmt.Fprintf(&sb, "   GitHub: %s\n", p.GithubURL)
		}
		sb.WriteString("   ---\n")
	}

	sb.WriteString("\nUse 'project <number>' to see detailed information about a specific project.")
	return sb.String()
}

// renderProjectDetail formats a single project's detail view.
func renderProjectDetail(p *domain.ResolvedProject) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n%s\n", projectTitle(p), projectDescription(p))

	if content := projectContent(p); content != "" {
		fmt.Fprintf(&sb, "\n%s\n", content)
	}
	if len(p.Technologies) > 0 {
		fmt.Fprintf(&sb, "\nTechnologies: %s\n", strings.Join(p.Technologies, ", "))
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}

	var links []string
	if p.DemoURL != "" {
		links = append(links, "Demo: "+p.DemoURL)
	}
	if p.GithubURL != "" {
		links = append(links, "GitHub: "+p.GithubURL)
	}
	if len(links) > 0 {
		fmt.Fprintf(&sb, "\nLinks:\n  %s\n", strings.Join(links, "\n  "))
	}

	sb.WriteString("\nUse 'projects' to see all projects")
	return sb.String()
}

// renderSkills formats skills grouped by category with proficiency bars.
func renderSkills(skills []domain.ResolvedSkill) string {
	byCategory := make(map[domain.SkillCategory][]domain.ResolvedSkill)
	for _, s := range skills {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	var sb strings.Builder
	sb.WriteString("Technical Skills\n")

	for _, category := range skillCategoryOrder {
		group, ok := byCategory[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n%s\n", strings.ReplaceAll(string(category), "_", " "))
		for i := range group {
			s := &group[i]
			fmt.Fprintf(&sb, "  %s: %s %d%% %dy\n",
				skillName(s), skillBar(s.Level), s.Level, s.YearsOfExp)
		}
	}

	sb.WriteString("\nLegend: level (0-100%), Ny = years of experience")
	return sb.String()
}

// skillName returns the translated skill name when available.
func skillName(s *domain.ResolvedSkill) string {
	if s.Translation != nil && s.Translation.Name != "" {
		return s.Translation.Name
	}
	return s.Name
}

// skillBar renders a 10-slot proficiency bar for a 0-100 level.
func skillBar(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	filled := level / skillBarWidth
	return strings.Repeat("█", filled) + strings.Repeat("░", skillBarWidth-filled)
}
