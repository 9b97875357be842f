package main

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var signupCommand = &cli.Command{
	Name:  "signup",
	Usage: "Create a dashboard account and log in to it",
	Flags: []cli.Flag{
		cliFlagEmail,
		&cli.StringFlag{
			Name:    flagName,
			Aliases: []string{"n"},
			Usage:   "Specify the display name for the new account",
		},
		cliFlagPassword,
	},
	Action: signup,
}

func signup(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("signup requires no arguments")
	}

	svc, state, address, err := getService(c)
	if err != nil {
		return errors.Wrap(err, "error getting dashboard client")
	}

	name := c.String(flagName)
	if name == "" {
		if err := survey.AskOne(
			&survey.Input{
				Message: "Name",
			},
			&name,
			survey.WithValidator(survey.Required),
		); err != nil {
			return errors.Wrap(err, "error reading name")
		}
	}
	email, password, err :=
		credentials(c.String(flagEmail), c.String(flagPassword))
	if err != nil {
		return err
	}

	if err :=
		checkAuthResult(svc.Signup(c.Context, email, password, name)); err != nil {
		return err
	}

	if err := saveConfig(&config{APIAddress: address}); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	printAuthState(state)
	return nil
}
