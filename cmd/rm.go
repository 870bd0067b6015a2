package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/cookpit/cookpit/cmd/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/cookpitcli"
)

var (
	rmDomain string
	rmPath   string
	rmSecure bool

	rmFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "domain, d",
			Usage:       "cookie domain (required)",
			Destination: &rmDomain,
		},
		cli.StringFlag{
			Name:        "path, p",
			Usage:       "cookie path",
			Value:       "/",
			Destination: &rmPath,
		},
		cli.BoolFlag{
			Name:        "secure, x",
			Usage:       "the cookie is secure-only",
			Destination: &rmSecure,
		},
	}
)

func remove(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no cookie name provided"),
		)
	} else if name == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if rmDomain == "" {
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no cookie domain provided"),
		)
	}

	client, err := cookpitcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "rm", "new_client", err)
		return nil
	}
	defer client.Close()

	res, err := client.RemoveCookie(cookiekit.CookieParam{
		Name:   name,
		Domain: rmDomain,
		Path:   rmPath,
		Secure: rmSecure,
	})
	if err != nil {
		common.PrintRuntimeErr(ctx, "rm", "remove_cookie", err)
		return nil
	}
	if !res.Success {
		fmt.Printf("cookpit: could not remove %s: %s\n", name, res.Error)
		return nil
	}
	fmt.Printf("Removed %s from %s%s\n", name, rmDomain, rmPath)
	return nil
}
