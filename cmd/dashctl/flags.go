package main

import "github.com/urfave/cli/v2"

const (
	flagBrowse   = "browse"
	flagEmail    = "email"
	flagInsecure = "insecure"
	flagName     = "name"
	flagOutput   = "output"
	flagPassword = "password"
	flagProvider = "provider"
	flagRefresh  = "refresh"
	flagServer   = "server"
	flagVerbose  = "verbose"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in the specified format; supported formats: table, " +
			"yaml, json",
		Value: "table",
	}
	cliFlagEmail = &cli.StringFlag{
		Name:    flagEmail,
		Aliases: []string{"e"},
		Usage:   "Specify the account email address non-interactively",
	}
	cliFlagPassword = &cli.StringFlag{
		Name:    flagPassword,
		Aliases: []string{"p"},
		Usage:   "Specify the account password non-interactively",
	}
)
