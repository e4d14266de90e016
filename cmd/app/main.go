// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cms/cmd/app/commands"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "CMS backend application",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create the initial admin account (refuses if an admin already exists)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    "Admin email address",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Admin password",
					},
					&cli.StringFlag{
						Name:  "first-name",
						Value: "Admin",
						Usage: "Admin first name",
					},
					&cli.StringFlag{
						Name:  "last-name",
						Value: "User",
						Usage: "Admin last name",
					},
					&cli.StringFlag{
						Name:  "gender",
						Value: "M",
						Usage: "Admin gender (M or F)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateAdmin(ctx, commands.CreateAdminInput{
						Email:     cmd.String("email"),
						Password:  cmd.String("password"),
						FirstName: cmd.String("first-name"),
						LastName:  cmd.String("last-name"),
						Gender:    cmd.String("gender"),
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
