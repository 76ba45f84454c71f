// Package terminal implements the command interpreter behind the
// terminal-style interface. The interpreter is a pure translator from a
// line of text to display entries: theme switches and buffer wipes are
// signalled via system entries and applied by the caller, never here.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/k1ngs/portfolio-api/internal/domain"
	"github.com/k1ngs/portfolio-api/internal/logger"
)

// ContentSource resolves editable display strings by key and language.
type ContentSource interface {
	GetByKey(ctx context.Context, key, language string) (*domain.ResolvedContent, error)
}

// ProjectSource lists portfolio projects for terminal rendering.
type ProjectSource interface {
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.ResolvedProject, error)
	GetByIndex(ctx context.Context, index int, language string) (*domain.ResolvedProject, error)
}

// SkillSource lists skills for terminal rendering.
type SkillSource interface {
	List(ctx context.Context, f domain.SkillFilter) ([]domain.ResolvedSkill, error)
}

// handlerFunc handles a single command. arg is the remainder of the line
// after the command word, trimmed.
type handlerFunc func(ctx context.Context, arg string) []domain.Entry

// errProcessing is the generic message shown when a dependency fails.
// Internal detail stays in the logs.
const errProcessing = "Error processing command. Please try again later."

// terminalListLimit caps how many rows terminal listings pull.
const terminalListLimit = 50

// Interpreter dispatches terminal commands through a static table.
// It holds no mutable state and is safe for concurrent use.
type Interpreter struct {
	content  ContentSource
	projects ProjectSource
	skills   SkillSource
	language string
	log      logger.Logger
	commands map[string]handlerFunc
}

// NewInterpreter creates an Interpreter resolving display text for the
// given default language.
func NewInterpreter(
	content ContentSource,
	projects ProjectSource,
	skills SkillSource,
	language string,
	log logger.Logger,
) *Interpreter {
	i := &Interpreter{
		content:  content,
		projects: projects,
		skills:   skills,
		language: language,
		log:      log,
	}
	i.commands = map[string]handlerFunc{
		"help":     i.handleHelp,
		"about":    i.handleAbout,
		"projects": i.handleProjects,
		"project":  i.handleProject,
		"skills":   i.handleSkills,
		"contact":  i.handleContact,
		"theme":    i.handleTheme,
		"clear":    i.handleClear,
	}
	return i
}

// Process interprets one line of input and returns the entries to display.
// It always returns at least one entry and never panics; dependency
// failures are converted into a single error entry.
func (i *Interpreter) Process(ctx context.Context, line string) []domain.Entry {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return []domain.Entry{errorEntry("Please enter a command. Type 'help' for available commands.")}
	}

	command, arg := splitCommand(trimmed)

	handler, ok := i.commands[command]
	if !ok {
		return []domain.Entry{errorEntry(
			fmt.Sprintf("Command '%s' not found. Type 'help' to see available commands.", command),
		)}
	}
	return handler(ctx, arg)
}

// splitCommand splits a trimmed line on the first whitespace run into a
// lowercased command word and the remaining argument string.
func splitCommand(line string) (command, arg string) {
	fields := strings.Fields(line)
	return strings.ToLower(fields[0]), strings.Join(fields[1:], " ")
}

func (i *Interpreter) handleHelp(_ context.Context, _ string) []domain.Entry {
	return []domain.Entry{outputEntry(helpText)}
}

func (i *Interpreter) handleAbout(ctx context.Context, _ string) []domain.Entry {
	text, err := i.resolveText(ctx, keyAbout)
	if err != nil {
		return []domain.Entry{errorEntry(errProcessing)}
	}
	return []domain.Entry{outputEntry(text)}
}

func (i *Interpreter) handleContact(ctx context.Context, _ string) []domain.Entry {
	text, err := i.resolveText(ctx, keyContact)
	if err != nil {
		return []domain.Entry{errorEntry(errProcessing)}
	}
	return []domain.Entry{outputEntry(text)}
}

func (i *Interpreter) handleProjects(ctx context.Context, _ string) []domain.Entry {
	projects, err := i.projects.List(ctx, domain.ProjectFilter{
		Language: i.language,
		Limit:    terminalListLimit,
	})
	if err != nil {
		i.log.Error("Terminal project listing failed", logger.Error(err))
		return []domain.Entry{errorEntry(errProcessing)}
	}
	if len(projects) == 0 {
		return []domain.Entry{outputEntry("No projects available yet.")}
	}
	return []domain.Entry{outputEntry(renderProjectList(projects))}
}

func (i *Interpreter) handleProject(ctx context.Context, arg string) []domain.Entry {
	if arg == "" {
		return []domain.Entry{errorEntry("Please specify a project number. Use 'projects' to see the list.")}
	}

	index, err := strconv.Atoi(arg)
	if err != nil || index < 1 {
		return []domain.Entry{errorEntry(
			fmt.Sprintf("Project %s not found. Use 'projects' to see available projects.", arg),
		)}
	}

	project, err := i.projects.GetByIndex(ctx, index, i.language)
	if err != nil {
		if errorsIsNotFound(err) {
			return []domain.Entry{errorEntry(
				fmt.Sprintf("Project %d not found. Use 'projects' to see available projects.", index),
			)}
		}
		i.log.Error("Terminal project lookup failed", logger.Int("index", index), logger.Error(err))
		return []domain.Entry{errorEntry(errProcessing)}
	}
	return []domain.Entry{outputEntry(renderProjectDetail(project))}
}

func (i *Interpreter) handleSkills(ctx context.Context, _ string) []domain.Entry {
	skills, err := i.skills.List(ctx, domain.SkillFilter{
		Language: i.language,
		Limit:    terminalListLimit,
	})
	if err != nil {
		i.log.Error("Terminal skill listing failed", logger.Error(err))
		return []domain.Entry{errorEntry(errProcessing)}
	}
	if len(skills) == 0 {
		return []domain.Entry{outputEntry("No skills available yet.")}
	}
	return []domain.Entry{outputEntry(renderSkills(skills))}
}

func (i *Interpreter) handleTheme(_ context.Context, arg string) []domain.Entry {
	name := strings.ToLower(strings.TrimSpace(arg))
	if name == "" {
		return []domain.Entry{errorEntry(
			"Please specify a theme. Available themes: " + availableThemes(),
		)}
	}

	canonical, ok := themeAliases[name]
	if !ok {
		return []domain.Entry{errorEntry(
			fmt.Sprintf("Theme '%s' not found. Available themes: %s", name, availableThemes()),
		)}
	}
	return []domain.Entry{systemEntry("Theme will be changed to: " + canonical)}
}

func (i *Interpreter) handleClear(_ context.Context, _ string) []domain.Entry {
	return []domain.Entry{systemEntry("Terminal cleared")}
}

// resolveText looks up a content key and falls back to the central default
// table when the key or the translation is missing. A storage failure is
// returned to the caller for conversion into an error entry.
func (i *Interpreter) resolveText(ctx context.Context, key string) (string, error) {
	rc, err := i.content.GetByKey(ctx, key, i.language)
	if err != nil {
		i.log.Error("Terminal content lookup failed",
			logger.String("key", key),
			logger.Error(err),
		)
		return "", err
	}
	if rc == nil || rc.Translation == nil {
		return fallbackText(key), nil
	}
	return rc.Translation.Value, nil
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func outputEntry(content string) domain.Entry {
	return domain.Entry{Kind: domain.EntryOutput, Content: content, Timestamp: time.Now()}
}

func errorEntry(content string) domain.Entry {
	return domain.Entry{Kind: domain.EntryError, Content: content, Timestamp: time.Now()}
}

func systemEntry(content string) domain.Entry {
	return domain.Entry{Kind: domain.EntrySystem, Content: content, Timestamp: time.Now()}
}
