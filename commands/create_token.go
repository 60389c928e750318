package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"reservas/models"
)

type UserEnsurer interface {
	EnsureUser(ctx context.Context, username string) (*models.User, bool, error)
}

type APITokenIssuer interface {
	APITokenFor(ctx context.Context, user *models.User) (*models.APIToken, error)
}

// CreateTokenCommand da un token de API fijo a un usuario de integración
type CreateTokenCommand struct {
	Username string
	Users    UserEnsurer
	Tokens   APITokenIssuer
	Out      io.Writer
}

func (c *CreateTokenCommand) Execute(ctx context.Context) error {
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("debe indicar el nombre de usuario")
	}
	user, created, err := c.Users.EnsureUser(ctx, c.Username)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(c.Out, "Usuario '%s' creado.\n", user.Username)
	} else {
		fmt.Fprintf(c.Out, "El usuario '%s' ya existía.\n", user.Username)
	}

	token, err := c.Tokens.APITokenFor(ctx, user)
	if err != nil {
		return fmt.Errorf("creando token: %w", err)
	}
	line := strings.Repeat("=", 40)
	fmt.Fprintf(c.Out, "%s\nTOKEN: %s\n%s\n", line, token.Key, line)
	fmt.Fprintln(c.Out, "Úsalo en la cabecera Authorization: Token <token>.")
	return nil
}
