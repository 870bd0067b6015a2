package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"

	cmdCommon "github.com/cookpit/cookpit/cmd/common"
	"github.com/cookpit/cookpit/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/cookpitcli"
)

var (
	forceClear  bool
	clearTarget string

	clearFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "force, f",
			Usage:       "skip the confirmation prompt (default: false)",
			Destination: &forceClear,
		},
		cli.StringFlag{
			Name:        "target, t",
			Usage:       "use the daemon's captured scan of this browser target",
			Destination: &clearTarget,
		},
	}
)

func clear(ctx *cli.Context) error {
	url := ctx.Args().First()
	if url == "" && clearTarget == "" {
		return cmdCommon.PrintErrWithCmdHelp(
			ctx,
			errors.New("no url provided"),
		)
	} else if url == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if !confirm(command("clear"), forceClear) {
		return nil
	}
	client, err := cookpitcli.NewClient()
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "clear", "new_client", err)
		return nil
	}
	defer client.Close()

	rr := time.Millisecond * 30
	p := mpb.New(mpb.WithWidth(64), mpb.WithRefreshRate(rr))
	bar := cmdCommon.InitBar(p, "Clearing", 0)
	// Each relayed removal advances the bar while the bulk result is pending.
	client.OnCookieChanged(func(u *common.CookieChangedUpdate) error {
		if u.Removed {
			bar.Increment()
		}
		return nil
	})

	resp, err := client.GetCookies(url, &cookpitcli.GetCookiesOpts{TargetId: clearTarget})
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "clear", "get_cookies", err)
		return nil
	}
	if len(resp.Cookies) == 0 {
		fmt.Println("cookpit: no cookies to clear")
		return nil
	}

	params := make([]cookiekit.CookieParam, 0, len(resp.Cookies))
	for _, c := range resp.Cookies {
		params = append(params, cookiekit.CookieParam{
			Name:           c.Name,
			Domain:         c.Domain,
			Path:           c.Path,
			Secure:         c.Secure,
			HttpOnly:       c.HttpOnly,
			SameSite:       c.SameSite,
			Session:        c.Session,
			ExpirationDate: c.ExpirationDate,
			StoreId:        c.StoreId,
		})
	}

	bar.SetTotal(int64(len(params)), false)
	res, err := client.RemoveAllCookies(params)
	if err != nil {
		bar.Abort(false)
		p.Wait()
		cmdCommon.PrintRuntimeErr(ctx, "clear", "remove_all", err)
		return nil
	}
	bar.SetCurrent(int64(res.Removed))
	bar.SetTotal(int64(len(params)), true)
	p.Wait()

	if res.Failed > 0 {
		fmt.Printf("Removed %d cookies, %d failed.\n", res.Removed, res.Failed)
		return nil
	}
	fmt.Printf("Removed all %d cookies.\n", res.Removed)
	return nil
}
