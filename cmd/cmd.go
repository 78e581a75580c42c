// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   configFile,
	}
}

// installCommand registers the daily agent with launchd.
func installCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "install",
		Usage:  "Register the daily notification agent with launchd",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Install,
	}
}

// uninstallCommand unloads the agent and removes its descriptor.
func uninstallCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "uninstall",
		Usage:  "Unload the notification agent and remove its descriptor",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Uninstall,
	}
}

// statusCommand reports descriptor and registration state.
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show whether the notification agent is installed and loaded",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Status,
	}
}

// agentCommand controls the registered job on demand.
func agentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "agent",
		Usage: "Control the registered agent",
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Run the notification job now",
				Action: r.AgentStart,
			},
			{
				Name:   "stop",
				Usage:  "Stop the notification job",
				Action: r.AgentStop,
			},
		},
	}
}

// notifyCommand runs one notification cycle. This is what launchd invokes daily.
func notifyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "notify",
		Usage: "Check the finance database and post notifications",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print notifications instead of posting them",
			},
		},
		Action: r.Notify,
	}
}

// setupCommand handles database setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize the finance database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent database migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupRollback,
			},
		},
	}
}
