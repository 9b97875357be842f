package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out of the dashboard",
	Action: logout,
}

func logout(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	svc, _, _, err := getService(c)
	if err != nil {
		return errors.Wrap(err, "error getting dashboard client")
	}

	if result := svc.Logout(c.Context); !result.Success {
		return errors.Errorf("logout failed: %s", result.Error)
	}

	fmt.Println("Logout was successful.")
	return nil
}
