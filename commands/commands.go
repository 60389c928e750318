package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Command es una tarea de administración lanzada desde la consola
type Command interface {
	Execute(ctx context.Context) error
}

// confirm pregunta y devuelve true solo si la respuesta es "s"
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (s/n): ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "s")
}
