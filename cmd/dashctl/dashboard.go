package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

type dashboardItem struct {
	title       string
	description string
	path        string
}

var dashboardItems = []dashboardItem{
	{
		title:       "Notes",
		description: "Your personal notes with real-time sync",
		path:        "/dashboard/notes",
	},
	{
		title:       "Database",
		description: "Manage your database records",
		path:        "/dashboard/database",
	},
	{
		title:       "Tasks",
		description: "Track and manage your tasks",
		path:        "/dashboard/tasks",
	},
}

var dashboardCommand = &cli.Command{
	Name:   "dashboard",
	Usage:  "Show the dashboard for the logged in user",
	Action: showDashboard,
}

func showDashboard(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("dashboard requires no arguments")
	}

	svc, _, address, err := getService(c)
	if err != nil {
		return errors.Wrap(err, "error getting dashboard client")
	}

	state := svc.CachedSession(c.Context)
	if !state.Authenticated {
		return errors.New(
			"you are not logged in; please use `dashctl login` to continue",
		)
	}

	fmt.Printf("Welcome, %s\n\n", displayName(state.User))

	table := uitable.New()
	table.Wrap = true
	table.MaxColWidth = 50
	table.AddRow("SECTION", "DESCRIPTION", "URL")
	for _, item := range dashboardItems {
		table.AddRow(item.title, item.description, address+item.path)
	}
	fmt.Println(table)
	return nil
}
