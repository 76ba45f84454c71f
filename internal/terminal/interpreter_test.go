package terminal_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
	"github.com/k1ngs/portfolio-api/internal/terminal"
)

var errStore = errors.New("store unavailable")

type fakeContent struct {
	values map[string]string
	err    error
}

func (f *fakeContent) GetByKey(_ context.Context, key, _ string) (*domain.ResolvedContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	return &domain.ResolvedContent{
		Translation: &domain.ContentTranslation{Value: value},
	}, nil
}

type fakeProjects struct {
	projects []domain.ResolvedProject
	err      error
}

func (f *fakeProjects) List(_ context.Context, _ domain.ProjectFilter) ([]domain.ResolvedProject, error) {
	return f.projects, f.err
}

func (f *fakeProjects) GetByIndex(_ context.Context, index int, _ string) (*domain.ResolvedProject, error) {
	if f.err != nil {
		return nil, f.err
	}
	if index < 1 || index > len(f.projects) {
		return nil, domain.ErrNotFound
	}
	return &f.projects[index-1], nil
}

type fakeSkills struct {
	skills []domain.ResolvedSkill
	err    error
}

func (f *fakeSkills) List(_ context.Context, _ domain.SkillFilter) ([]domain.ResolvedSkill, error) {
	return f.skills, f.err
}

func newTestInterpreter(content *fakeContent, projects *fakeProjects, skills *fakeSkills) *terminal.Interpreter {
	if content == nil {
		content = &fakeContent{}
	}
	if projects == nil {
		projects = &fakeProjects{}
	}
	if skills == nil {
		skills = &fakeSkills{}
	}
	return terminal.NewInterpreter(content, projects, skills, "en", logger.NewNop())
}

func processOne(t *testing.T, i *terminal.Interpreter, line string) domain.Entry {
	t.Helper()

	entries := i.Process(context.Background(), line)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	return entries[0]
}

func TestProcess_BlankInput(t *testing.T) {
	i := newTestInterpreter(nil, nil, nil)

	entry := processOne(t, i, "   ")
	if entry.Kind != domain.EntryError {
		t.Fatalf("expected error entry, got %q", entry.Kind)
	}
	if entry.Content != "Please enter a command. Type 'help' for available commands." {
		t.Fatalf("unexpected content: %q", entry.Content)
	}
}

func TestProcess_UnknownCommand(t *testing.T) {
	i := newTestInterpreter(nil, nil, nil)

	entry := processOne(t, i, "frobnicate")
	if entry.Kind != domain.EntryError {
		t.Fatalf("expected error entry, got %q", entry.Kind)
	}
	if entry.Content != "Command 'frobnicate' not found. Type 'help' to see available commands." {
		t.Fatalf("unexpected content: %q", entry.Content)
	}
}

func TestProcess_CaseInsensitiveCommand(t *testing.T) {
	i := newTestInterpreter(nil, nil, nil)

	entry := processOne(t, i, "HELP")
	if entry.Kind != domain.EntryOutput {
		t.Fatalf("expected output entry, got %q", entry.Kind)
	}
	if !strings.Contains(entry.Content, "Available Commands") {
		t.Fatalf("expected help text, got %q", entry.Content)
	}
}

func TestProcess_AboutUsesStoredContent(t *testing.T) {
	content := &fakeContent{values: map[string]string{
		"terminal.about": "Stored about text",
	}}
	i := newTestInterpreter(content, nil, nil)

	entry := processOne(t, i, "about")
	if entry.Kind != domain.EntryOutput {
		t.Fatalf("expected output entry, got %q", entry.Kind)
	}
	if entry.Content != "Stored about text" {
		t.Fatalf("unexpected content: %q", entry.Content)
	}
}

func TestProcess_AboutFallsBackWhenMissing(t *testing.T) {
	i := newTestInterpreter(&fakeContent{}, nil, nil)

	entry := processOne(t, i, "about")
	if entry.Kind != domain.EntryOutput {
		t.Fatalf("expected output entry, got %q", entry.Kind)
	}
	if !strings.Contains(entry.Content, "Full-Stack Developer") {
		t.Fatalf("expected fallback about text, got %q", entry.Content)
	}
}

func TestProcess_AboutStoreFailure(t *testing.T) {
	i := newTestInterpreter(&fakeContent{err: errStore}, nil, nil)

	entry := processOne(t, i, "about")
	if entry.Kind != domain.EntryError {
		t.Fatalf("expected error entry, got %q", entry.Kind)
	}
	if entry.Content != "Error processing command. Please try again later." {
		t.Fatalf("unexpected content: %q", entry.Content)
	}
}

func TestProcess_ProjectsEmpty(t *testing.T) {
	i := newTestInterpreter(nil, &fakeProjects{}, nil)

	entry := processOne(t, i, "projects")
	if entry.Kind != domain.EntryOutput {
		t.Fatalf("expected output entry, got %q", entry.Kind)
	}
	if entry.Content != "No projects available yet." {
		t.Fatalf("unexpected content: %q", entry.Content)
	}
}

func TestProcess_ProjectsNumberedListing(t *testing.T) {
	projects := &fakeProjects{projects: []domain.ResolvedProject{
		{Project: domain.Project{Title: "Alpha", Description: "First project"}},
		{Project: domain.Project{Title: "Beta", Description: "Second project"}},
	}}
	i := newTestInterpreter(nil, projects, nil)

	entry := processOne(t, i, "projects")
	if !strings.Contains(entry.Content, "1. Alpha") || !strings.Contains(entry.Content, "2. Beta") {
		t.Fatalf("expected numbered listing, got %q", entry.Content)
	}
}

func TestProcess_ProjectArgValidation(t *testing.T) {
	projects := &fakeProjects{projects: []domain.ResolvedProject{
		{Project: domain.Project{Title: "Alpha", Description: "First project"}},
	}}
	i := newTestInterpreter(nil, projects, nil)

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "missing argument",
			line: "project",
			want: "Please specify a project number. Use 'projects' to see the list.",
		},
		{
			name: "non-numeric argument",
			line: "project abc",
			want: "Project abc not found. Use 'projects' to see available projects.",
		},
		{
			name: "zero index",
			line: "project 0",
			want: "Project 0 not found. Use 'projects' to see available projects.",
		},
		{
			name: "out of range",
			line: "project 9",
			want: "Project 9 not found. Use 'projects' to see available projects.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := processOne(t, i, tt.line)
			if entry.Kind != domain.EntryError {
				t.Fatalf("expected error entry, got %q", entry.Kind)
			}
			if entry.Content != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, entry.Content)
			}
		})
	}
}

func TestProcess_ProjectDetail(t *testing.T) {
	projects := &fakeProjects{projects: []domain.ResolvedProject{
		{Project: domain.Project{
			Title:        "Alpha",
			Description:  "First project",
			Technologies: []string{"Go", "PostgreSQL"},
			GithubURL:    "https://github.com/example/alpha",
		}},
	}}
	i := newTestInterpreter(nil, projects, nil)

	entry := processOne(t, i, "project 1")
	if entry.Kind != domain.EntryOutput {
		t.Fatalf("expected output entry, got %q", entry.Kind)
	}
	for _, want := range []string{"Alpha", "Go, PostgreSQL", "https://github.com/example/alpha"} {
		if !strings.Contains(entry.Content, want) {
			t.Errorf("detail missing %q in %q", want, entry.Content)
		}
	}
}

func TestProcess_SkillsGrouped(t *testing.T) {
	skills := &fakeSkills{skills: []domain.ResolvedSkill{
		{Skill: domain.Skill{Name: "Go", Level: 90, Category: domain.SkillCategoryBackend, YearsOfExp: 5}},
		{Skill: domain.Skill{Name: "React", Level: 70, Category: domain.SkillCategoryFrontend, YearsOfExp: 3}},
	}}
	i := newTestInterpreter(nil, nil, skills)

	entry := processOne(t, i, "skills")
	if entry.Kind != domain.EntryOutput {
		t.Fatalf("expected output entry, got %q", entry.Kind)
	}
	if !strings.Contains(entry.Content, "Go") || !strings.Contains(entry.Content, "React") {
		t.Fatalf("expected both skills, got %q", entry.Content)
	}
	// Frontend section is rendered before backend.
	if strings.Index(entry.Content, "React") > strings.Index(entry.Content, "Go: ") {
		t.Fatalf("expected frontend before backend, got %q", entry.Content)
	}
}

func TestProcess_Theme(t *testing.T) {
	i := newTestInterpreter(nil, nil, nil)

	tests := []struct {
		name     string
		line     string
		wantKind domain.EntryKind
		want     string
	}{
		{
			name:     "canonical theme",
			line:     "theme matrix",
			wantKind: domain.EntrySystem,
			want:     "Theme will be changed to: matrix",
		},
		{
			name:     "alias resolves to canonical",
			line:     "theme clean",
			wantKind: domain.EntrySystem,
			want:     "Theme will be changed to: professional",
		},
		{
			name:     "dark alias resolves to matrix",
			line:     "theme DARK",
			wantKind: domain.EntrySystem,
			want:     "Theme will be changed to: matrix",
		},
		{
			name:     "unknown theme",
			line:     "theme neon",
			wantKind: domain.EntryError,
			want:     "Theme 'neon' not found. Available themes: clean, cyberpunk, dark, hacker, matrix, professional, retro",
		},
		{
			name:     "missing argument",
			line:     "theme",
			wantKind: domain.EntryError,
			want:     "Please specify a theme. Available themes: clean, cyberpunk, dark, hacker, matrix, professional, retro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := processOne(t, i, tt.line)
			if entry.Kind != tt.wantKind {
				t.Fatalf("expected kind %q, got %q", tt.wantKind, entry.Kind)
			}
			if entry.Content != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, entry.Content)
			}
		})
	}
}

func TestProcess_Clear(t *testing.T) {
	i := newTestInterpreter(nil, nil, nil)

	entry := processOne(t, i, "clear")
	if entry.Kind != domain.EntrySystem {
		t.Fatalf("expected system entry, got %q", entry.Kind)
	}
	if entry.Content != "Terminal cleared" {
		t.Fatalf("unexpected content: %q", entry.Content)
	}
}
