package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/krancour/dashboard/pkg/signals"
	"github.com/krancour/dashboard/pkg/version"
	"github.com/urfave/cli/v2"
)

func main() {
	// glog registers its flags on the standard flag set; dashctl owns the
	// command line, so configure glog directly.
	_ = flag.Set("logtostderr", "true")
	_ = flag.CommandLine.Parse([]string{})
	defer glog.Flush()

	app := cli.NewApp()
	app.Name = "dashctl"
	app.Usage = "Sign in to the dashboard and see what's on it"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
			EnvVars: []string{"DASHBOARD_INSECURE"},
		},
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage: "The address of the API server; defaults to the address " +
				"used at the last login",
		},
		&cli.BoolFlag{
			Name:    flagVerbose,
			Aliases: []string{"v"},
			Usage:   "Log API traffic and recovered errors to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		configureLogging(c.Bool(flagVerbose))
		return nil
	}
	app.Commands = []*cli.Command{
		dashboardCommand,
		loginCommand,
		logoutCommand,
		sessionCommand,
		signupCommand,
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		glog.Flush()
		os.Exit(1)
	}
	fmt.Println()
}
