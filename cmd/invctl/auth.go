package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"invctl/internal/api"
	"invctl/internal/models"
	"invctl/internal/session"
)

func loginCommand(client *api.Client, sess *session.Store) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "authenticate and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			resp, err := client.Login(c.Context, c.String("username"), c.String("password"))
			if err != nil {
				return err
			}

			if err := sess.Init(resp.Token, resp.User); err != nil {
				return fmt.Errorf("authenticated but failed to store session: %w", err)
			}

			fmt.Printf("Logged in as %s\n", resp.User.Username)
			return nil
		},
	}
}

func logoutCommand(sess *session.Store) *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "discard the stored session",
		Action: func(c *cli.Context) error {
			if err := sess.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func registerCommand(client *api.Client) *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create a new account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "full-name", Required: true},
		},
		Action: func(c *cli.Context) error {
			req := models.RegisterRequest{
				Username: c.String("username"),
				Password: c.String("password"),
				Email:    c.String("email"),
				FullName: c.String("full-name"),
			}

			if err := client.Register(c.Context, req); err != nil {
				return err
			}

			fmt.Println("Registration successful! Please login.")
			return nil
		},
	}
}
