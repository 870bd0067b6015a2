package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/cookpit/cookpit/cmd/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/cookpitcli"
)

var (
	setDomain   string
	setPath     string
	setSameSite string
	setTTL      time.Duration
	setSession  bool
	setHTTPOnly bool
	setInsecure bool

	setFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "domain, d",
			Usage:       "cookie domain (required)",
			Destination: &setDomain,
		},
		cli.StringFlag{
			Name:        "path, p",
			Usage:       "cookie path",
			Value:       "/",
			Destination: &setPath,
		},
		cli.StringFlag{
			Name:        "same-site, m",
			Usage:       "SameSite attribute (strict, lax, no_restriction)",
			Value:       "lax",
			Destination: &setSameSite,
		},
		cli.DurationFlag{
			Name:        "ttl, e",
			Usage:       "cookie lifetime (default: one year)",
			Value:       DEF_COOKIE_TTL,
			Destination: &setTTL,
		},
		cli.BoolFlag{
			Name:        "session, s",
			Usage:       "create a session cookie with no expiry",
			Destination: &setSession,
		},
		cli.BoolFlag{
			Name:        "http-only, j",
			Usage:       "hide the cookie from page scripts",
			Destination: &setHTTPOnly,
		},
		cli.BoolFlag{
			Name:        "insecure, k",
			Usage:       "allow the cookie on plain http",
			Destination: &setInsecure,
		},
	}
)

func set(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no cookie name provided"),
		)
	} else if name == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	value := ctx.Args().Get(1)
	if setDomain == "" {
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no cookie domain provided"),
		)
	}

	param := cookiekit.CookieParam{
		Name:     name,
		Domain:   setDomain,
		Path:     setPath,
		Secure:   !setInsecure,
		HttpOnly: setHTTPOnly,
		SameSite: cookiekit.ParseSameSite(setSameSite),
		Session:  setSession,
	}
	if !setSession {
		exp := float64(time.Now().Add(setTTL).Unix())
		param.ExpirationDate = &exp
	}

	client, err := cookpitcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "set", "new_client", err)
		return nil
	}
	defer client.Close()

	res, err := client.SetCookie(param, value)
	if err != nil {
		common.PrintRuntimeErr(ctx, "set", "set_cookie", err)
		return nil
	}
	if !res.Success {
		fmt.Printf("cookpit: browser refused the cookie: %s\n", res.Error)
		return nil
	}
	fmt.Printf("Set %s on %s%s\n", name, setDomain, setPath)
	return nil
}
