package main

import (
	"context"
	"fmt"
	"time"

	"github.com/krancour/dashboard"
	"github.com/krancour/dashboard/pkg/auth"
	"github.com/krancour/dashboard/pkg/callback"
	"github.com/krancour/dashboard/pkg/logic"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in to the dashboard",
	Description: "By default, logs in with an email address and password. " +
		"Use --provider to log in through a third party instead.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    flagBrowse,
			Aliases: []string{"b"},
			Usage: "Use the system's default web browser to complete " +
				"authentication; only applicable when --provider is used",
		},
		cliFlagEmail,
		cliFlagPassword,
		&cli.StringFlag{
			Name:  flagProvider,
			Usage: "Log in through the named provider, e.g. google",
		},
	},
	Action: login,
}

func login(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("login requires no arguments")
	}

	provider := c.String(flagProvider)
	usingPassword := c.String(flagEmail) != "" || c.String(flagPassword) != ""
	if !logic.AtMostOne(provider != "", usingPassword) {
		return errors.New(
			"--provider cannot be combined with --email or --password",
		)
	}
	if c.Bool(flagBrowse) && provider == "" {
		return errors.New("--browse is only applicable when --provider is used")
	}

	svc, state, address, err := getService(c)
	if err != nil {
		return errors.Wrap(err, "error getting dashboard client")
	}

	if provider != "" {
		if err := socialLogin(c, svc, provider); err != nil {
			return err
		}
	} else {
		email, password, err :=
			credentials(c.String(flagEmail), c.String(flagPassword))
		if err != nil {
			return err
		}
		if err := checkAuthResult(svc.Login(c.Context, email, password)); err != nil {
			return err
		}
	}

	if err := saveConfig(&config{APIAddress: address}); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	printAuthState(state)
	return nil
}

func socialLogin(c *cli.Context, svc *auth.Service, provider string) error {
	server, err := callback.NewServer(svc.HandleTokenFromURL)
	if err != nil {
		return err
	}
	server.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Close(ctx)
	}()

	authURL, err := svc.SocialLogin(c.Context, provider, server.CallbackURL())
	if err != nil {
		return err
	}

	if c.Bool(flagBrowse) {
		if err := openBrowser(authURL); err != nil {
			return errors.Wrapf(
				err,
				"Error opening authentication URL using the system's default web "+
					"browser.\n\nPlease visit  %s  to complete authentication.\n",
				authURL,
			)
		}
		fmt.Println("Waiting for authentication to complete in your browser...")
	} else {
		fmt.Printf("Please visit  %s  to complete authentication.\n", authURL)
	}

	return server.Wait(c.Context)
}

func checkAuthResult(result dashboard.AuthResult) error {
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func printAuthState(state *auth.State) {
	if !state.IsAuthenticated() {
		fmt.Println(
			"A token was received, but the server did not confirm a session " +
				"for it. Use `dashctl session` to check again.",
		)
		return
	}
	user := state.User()
	fmt.Printf("You are logged in as %s (%s).\n", displayName(user), user.Email)
}

func displayName(user *dashboard.User) string {
	if user == nil {
		return ""
	}
	if user.Name != "" {
		return user.Name
	}
	return user.Email
}
