package terminal

import (
	"bufio"
	"fmt"
	"io"
	"secondheart-dashboard/internal/app/contracts"
	"strings"
)

type stdioPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdioPrompter shares the dashboard's input reader so confirmation
// answers and commands never compete for buffered bytes.
func NewStdioPrompter(in *bufio.Reader, out io.Writer) contracts.Prompter {
	return &stdioPrompter{in: in, out: out}
}

func (p *stdioPrompter) Confirm(message string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
