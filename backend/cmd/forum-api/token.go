package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/forum-dev/forum/shared/jwt"
)

// tokenCommand mints an access token signed with the configured key, for
// local development against a server without the auth service.
func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Print an access token for a user id",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Usage: "user id carried in the token", Required: true},
			&cli.DurationFlag{Name: "ttl", Usage: "token lifetime", Value: jwt.DefaultTTL},
		},
		Action: func(c *cli.Context) error {
			cfg := loadConfig(c)
			token, err := jwt.New(cfg.JwtKey(), c.Duration("ttl")).NewToken(c.String("user"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}
