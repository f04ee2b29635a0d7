package generator

import (
	"fmt"
	"strings"

	"github.com/CJHwong/git-msg/internal/provider"
)

// Request carries everything the generator needs for one run. Instructions
// is a pointer so that an explicitly empty instruction still produces the
// "Additional context:" line in the prompt.
type Request struct {
	Diff          string
	BranchName    string
	Count         int
	Instructions  *string
	RecentCommits []string
}

// Generator turns a request into commit message candidates via a single
// provider call.
type Generator struct {
	provider provider.Provider
}

func New(p provider.Provider) *Generator {
	return &Generator{provider: p}
}

// Generate builds the prompt, calls the provider once and parses the raw
// response into at most req.Count messages. Provider errors are returned
// unchanged; parsing itself never fails.
func (g *Generator) Generate(req Request) ([]string, error) {
	prompt := BuildPrompt(req)

	response, err := g.provider.GenerateText(prompt)
	if err != nil {
		return nil, err
	}

	return ParseResponse(response, req.Count), nil
}

// BuildPrompt assembles the prompt deterministically from the request.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d commit message(s) for the following changes.\n\n", req.Count)

	b.WriteString("Follow the Conventional Commits specification (https://www.conventionalcommits.org/):\n")
	b.WriteString("- Format: type(scope): subject\n")
	b.WriteString("- Types: feat, fix, docs, style, refactor, perf, test, build, ci, chore, revert\n")
	b.WriteString("- Keep the subject concise (under 72 characters)\n")
	b.WriteString("- Use imperative mood (\"add\" not \"added\")\n\n")

	fmt.Fprintf(&b, "Branch name: %s\n\n", req.BranchName)

	if len(req.RecentCommits) > 0 {
		b.WriteString("Recent commits:\n")
		for _, title := range req.RecentCommits {
			fmt.Fprintf(&b, "- %s\n", title)
		}
		b.WriteString("\n")
	}

	if req.Instructions != nil {
		fmt.Fprintf(&b, "Additional context: %s\n\n", *req.Instructions)
	}

	b.WriteString("Diff:\n```\n")
	b.WriteString(req.Diff)
	b.WriteString("\n```\n\n")

	fmt.Fprintf(&b, "Provide exactly %d commit message(s) in the format 'type(scope): subject', numbered if more than one.", req.Count)

	return b.String()
}
