package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	cmdCommon "github.com/cookpit/cookpit/cmd/common"
	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/cookpitcli"
)

var (
	watchScreenshot string
	watchTarget     string

	watchFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "screenshot, p",
			Usage:       "save the page screenshot captured by the daemon to this file",
			Destination: &watchScreenshot,
		},
		cli.StringFlag{
			Name:        "target, t",
			Usage:       "use the daemon's captured scan of this browser target",
			Destination: &watchTarget,
		},
	}
)

// watchFs is the filesystem screenshots are written to; tests swap it for an
// in-memory one.
var watchFs = afero.NewOsFs()

func watch(ctx *cli.Context) error {
	url := ctx.Args().First()
	if url == "" && watchTarget == "" {
		if ctx.Command.Name == "" {
			return cmdCommon.Help(ctx)
		}
		return cmdCommon.PrintErrWithCmdHelp(
			ctx,
			errors.New("no url provided"),
		)
	} else if url == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := cookpitcli.NewClient()
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "watch", "new_client", err)
		return nil
	}
	defer client.Close()

	store := cookiekit.NewStore()
	feed := cookiekit.NewFeed()
	client.OnCookieChanged(func(u *common.CookieChangedUpdate) error {
		action, applied := store.ApplyChange(u.Cookie, u.Removed, u.Cause)
		if !applied {
			return nil
		}
		at := time.UnixMilli(u.Timestamp)
		feed.Add(action, u.Cookie, u.Cause, at)
		printFeedLine(action, u.Cookie, u.Cause, at)
		return nil
	})

	resp, err := client.GetCookies(url, &cookpitcli.GetCookiesOpts{TargetId: watchTarget})
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "watch", "get_cookies", err)
		return nil
	}
	store.LoadAll(resp.Cookies)

	if watchScreenshot != "" && len(resp.Screenshot) > 0 {
		if err := afero.WriteFile(watchFs, watchScreenshot, resp.Screenshot, 0o644); err != nil {
			cmdCommon.PrintRuntimeErr(ctx, "watch", "screenshot", err)
		} else {
			fmt.Printf("Saved screenshot to %s\n", watchScreenshot)
		}
	}

	printStats(store.Stats())
	fmt.Println("Watching for cookie changes, press Ctrl+C to stop.")
	if err := client.Wait(); err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "watch", "listen", err)
	}
	return nil
}

func printFeedLine(action cookiekit.Action, c cookiekit.Cookie, cause cookiekit.ChangeCause, at time.Time) {
	suffix := ""
	if vendor := cookiekit.IdentifyVendor(c.Name, c.Domain); vendor != "" {
		suffix = fmt.Sprintf(" (%s)", vendor)
	}
	if cause != cookiekit.CauseExplicit {
		suffix += fmt.Sprintf(" [%s]", cause)
	}
	fmt.Printf("%s  %-7s %s %s%s\n",
		at.Format("15:04:05"),
		action,
		cookiekit.Truncate(c.Name, 32),
		c.Domain,
		suffix,
	)
}
