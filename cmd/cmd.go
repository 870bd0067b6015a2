package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/cookpit/cookpit/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var currentBuildArgs BuildArgs

func Execute(args []string, bArgs BuildArgs) error {
	currentBuildArgs = bArgs
	app := cli.App{
		Name:                  "cookpit",
		HelpName:              "cookpit",
		Usage:                 "A live cookie inspector for Chromium browsers.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "cookpit <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:               "daemon",
				Usage:              "run the cookpit daemon in the foreground",
				Description:        DaemonDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             daemon,
			},
			{
				Name:                   "list",
				Aliases:                []string{"l"},
				Usage:                  "list the cookies a page can see",
				Action:                 list,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ListDescription,
				UseShortOptionHandling: true,
				Flags:                  lsFlags,
			},
			{
				Name:                   "watch",
				Aliases:                []string{"w"},
				Usage:                  "stream live cookie changes for a page",
				Action:                 watch,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            WatchDescription,
				UseShortOptionHandling: true,
				Flags:                  watchFlags,
			},
			{
				Name:                   "set",
				Aliases:                []string{"s"},
				Usage:                  "create or overwrite a cookie",
				Action:                 set,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            SetDescription,
				UseShortOptionHandling: true,
				Flags:                  setFlags,
			},
			{
				Name:                   "rm",
				Usage:                  "delete one cookie",
				Action:                 remove,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            RemoveDescription,
				UseShortOptionHandling: true,
				Flags:                  rmFlags,
			},
			{
				Name:                   "clear",
				Usage:                  "delete every cookie a page can see",
				Action:                 clear,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ClearDescription,
				UseShortOptionHandling: true,
				Flags:                  clearFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of cookpit",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 list,
		Flags:                  lsFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
