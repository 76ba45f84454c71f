package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/k1ngs/portfolio-api/internal/logger"
	"github.com/k1ngs/portfolio-api/internal/terminal"
)

// TerminalHandler executes terminal commands against the interpreter.
type TerminalHandler struct {
	content         terminal.ContentSource
	projects        terminal.ProjectSource
	skills          terminal.SkillSource
	defaultLanguage string
	log             logger.Logger
}

// NewTerminalHandler creates a terminal handler resolving display text for
// defaultLanguage unless the request names another language.
func NewTerminalHandler(
	content terminal.ContentSource,
	projects terminal.ProjectSource,
	skills terminal.SkillSource,
	defaultLanguage string,
	log logger.Logger,
) *TerminalHandler {
	return &TerminalHandler{
		content:         content,
		projects:        projects,
		skills:          skills,
		defaultLanguage: defaultLanguage,
		log:             log,
	}
}

type executeRequest struct {
	Command  string `json:"command"`
	Language string `json:"language"`
}

// Execute handles POST /api/v1/terminal/execute. The response always has
// at least one entry; interpreter failures surface as error entries, never
// as HTTP errors.
func (h *TerminalHandler) Execute(c *gin.Context) {
	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	language := req.Language
	if language == "" {
		language = h.defaultLanguage
	}

	interp := terminal.NewInterpreter(h.content, h.projects, h.skills, language, h.log)
	entries := interp.Process(c.Request.Context(), req.Command)

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
