package main

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
)

// credentials prompts for whichever of email and password were not supplied
// on the command line.
func credentials(email, password string) (string, string, error) {
	if email == "" {
		if err := survey.AskOne(
			&survey.Input{
				Message: "Email",
			},
			&email,
			survey.WithValidator(survey.Required),
		); err != nil {
			return "", "", errors.Wrap(err, "error reading email")
		}
	}
	if password == "" {
		if err := survey.AskOne(
			&survey.Password{
				Message: "Password",
			},
			&password,
			survey.WithValidator(survey.Required),
		); err != nil {
			return "", "", errors.Wrap(err, "error reading password")
		}
	}
	return email, password, nil
}
