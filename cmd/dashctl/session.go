package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/krancour/dashboard"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var sessionCommand = &cli.Command{
	Name:  "session",
	Usage: "Show the current session",
	Flags: []cli.Flag{
		cliFlagOutput,
		&cli.BoolFlag{
			Name:    flagRefresh,
			Aliases: []string{"r"},
			Usage:   "Ask the server even if a cached session is available",
		},
	},
	Action: session,
}

func session(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("session requires no arguments")
	}

	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	svc, _, _, err := getService(c)
	if err != nil {
		return errors.Wrap(err, "error getting dashboard client")
	}

	var state dashboard.SessionState
	if c.Bool(flagRefresh) {
		state = svc.RefreshSession(c.Context)
	} else {
		state = svc.CachedSession(c.Context)
	}

	switch strings.ToLower(output) {
	case "table":
		if !state.Authenticated {
			fmt.Println("You are not logged in.")
			return nil
		}
		if state.User == nil {
			fmt.Println("Your session is still being confirmed.")
			return nil
		}
		table := uitable.New()
		table.AddRow("USER ID", "NAME", "EMAIL", "VERIFIED?", "EXPIRES")
		expires := ""
		if state.Session != nil && state.Session.ExpiresAt != nil {
			expires = state.Session.ExpiresAt.Format(time.RFC3339)
		}
		table.AddRow(
			state.User.ID,
			state.User.Name,
			state.User.Email,
			state.User.EmailVerified,
			expires,
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(state)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get session operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get session operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
