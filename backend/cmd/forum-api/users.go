package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"

	"github.com/forum-dev/forum/backend/internal/setup"
	"github.com/forum-dev/forum/shared/domain"
	"github.com/forum-dev/forum/shared/logger"
)

type userRecord struct {
	Id       string `yaml:"id" validate:"required"`
	Username string `yaml:"username" validate:"required,max=50"`
	Fullname string `yaml:"fullname" validate:"required"`
}

// readUsers parses a YAML list of user records.
func readUsers(path string) ([]domain.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	var records []userRecord
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	users := make([]domain.User, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("invalid user at index %d: %w", i, err)
		}
		users = append(users, domain.User{Id: rec.Id, Username: rec.Username, Fullname: rec.Fullname})
	}
	return users, nil
}

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Mirror user records from the auth service",
		Subcommands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Upsert users listed in a YAML file",
				ArgsUsage: "<users.yaml>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one users file")
					}
					users, err := readUsers(c.Args().First())
					if err != nil {
						return err
					}

					cfg := loadConfig(c)
					storage, closeStorage, err := setup.OpenStorage(c.Context, cfg)
					if err != nil {
						return err
					}
					defer closeStorage()

					if err := storage.UpsertUsers(c.Context, users...); err != nil {
						return err
					}
					logger.Log.Info("users imported", "count", len(users))
					return nil
				},
			},
		},
	}
}
