package terminal

// Content keys the terminal resolves through the content store.
const (
	keyAbout   = "terminal.about"
	keyContact = "terminal.contact"
)

// helpText is static: the command surface is fixed, so it never comes
// from the content store.
const helpText = `Available Commands:

INFORMATION
  help          - Show this help message
  about         - Display information about the author
  contact       - Show contact information

PORTFOLIO
  projects      - List all projects
  project <id>  - Show specific project details
  skills        - Display technical skills

CUSTOMIZATION
  theme <name>  - Change terminal theme
                  Available: matrix, cyberpunk, hacker, retro, professional
  clear         - Clear terminal screen

TIPS
  - Use up/down arrow keys to navigate command history
  - Commands are case-insensitive

Example: project 1, theme matrix, etc.`

// fallbacks is the single table of default display text. Every piece of
// fallback copy lives here, keyed by content key, so no caller embeds its
// own defaults.
var fallbacks = map[string]string{
	keyAbout: `About

Full-Stack Developer | Tech Enthusiast | Problem Solver

Passionate about creating innovative solutions using modern technologies,
with expertise across web development, mobile applications, and system
architecture.

Type 'skills' to see technical capabilities
Type 'projects' to explore the work
Type 'contact' to get in touch`,

	keyContact: `Get In Touch

Always open to discussing new opportunities, collaborations, or just
having a chat about technology.

Reach out for:
- Job opportunities
- Collaboration projects
- Technical discussions
- Open source contributions

Response time: usually within 24-48 hours.`,
}

// fallbackText returns the default text for a content key.
func fallbackText(key string) string {
	if text, ok := fallbacks[key]; ok {
		return text
	}
	return "Content unavailable."
}
