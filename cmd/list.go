package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/cookpit/cookpit/cmd/common"
	"github.com/cookpit/cookpit/pkg/cookiekit"
	"github.com/cookpit/cookpit/pkg/cookpitcli"
)

var (
	lsFilter string
	lsSort   string
	lsSearch string
	lsBySite bool
	lsTarget string

	lsFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "filter, f",
			Usage:       "show only matching cookies (firstParty, thirdParty, secure, httpOnly, session, persistent, large)",
			Destination: &lsFilter,
		},
		cli.StringFlag{
			Name:        "sort, s",
			Usage:       "sort order (party, name, domain, size, expiry)",
			Destination: &lsSort,
		},
		cli.StringFlag{
			Name:        "search, q",
			Usage:       "case-insensitive match against name, domain, value or vendor",
			Destination: &lsSearch,
		},
		cli.BoolFlag{
			Name:        "by-site, b",
			Usage:       "group counts by registrable site instead of listing cookies",
			Destination: &lsBySite,
		},
		cli.StringFlag{
			Name:        "target, t",
			Usage:       "use the daemon's captured scan of this browser target",
			Destination: &lsTarget,
		},
	}
)

func list(ctx *cli.Context) error {
	url := ctx.Args().First()
	if url == "" && lsTarget == "" {
		if ctx.Command.Name == "" {
			return common.Help(ctx)
		}
		return common.PrintErrWithCmdHelp(
			ctx,
			errors.New("no url provided"),
		)
	} else if url == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := cookpitcli.NewClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, "list", "new_client", err)
		return nil
	}
	defer client.Close()

	resp, err := client.GetCookies(url, &cookpitcli.GetCookiesOpts{TargetId: lsTarget})
	if err != nil {
		common.PrintRuntimeErr(ctx, "list", "get_cookies", err)
		return nil
	}
	if len(resp.Cookies) == 0 {
		fmt.Println("cookpit: no cookies found")
		return nil
	}

	store := cookiekit.NewStore()
	store.LoadAll(resp.Cookies)

	if lsBySite {
		printSites(store.Cookies())
		return nil
	}

	view := store.Project(cookiekit.Query{
		Filter: cookiekit.Filter(lsFilter),
		Search: lsSearch,
		Sort:   cookiekit.SortKey(lsSort),
	})
	printCookies(view)
	printStats(store.Stats())
	return nil
}

func printCookies(cookies []cookiekit.Cookie) {
	now := time.Now()
	fmt.Printf("%-24s %-28s %-5s %-20s %-8s %-10s %s\n",
		"NAME", "DOMAIN", "PARTY", "VENDOR", "SIZE", "EXPIRES", "SEC")
	fmt.Println(strings.Repeat("-", 104))
	for _, c := range cookies {
		party := "3rd"
		if c.FirstParty {
			party = "1st"
		}
		vendor := cookiekit.IdentifyVendor(c.Name, c.Domain)
		if vendor == "" {
			vendor = "-"
		}
		fmt.Printf("%-24s %-28s %-5s %-20s %-8s %-10s %d/4\n",
			cookiekit.Truncate(c.Name, 24),
			cookiekit.Truncate(c.Domain, 28),
			party,
			cookiekit.Truncate(vendor, 20),
			cookiekit.FormatBytes(c.Size),
			cookiekit.FormatExpiry(c.ExpirationDate, now),
			cookiekit.SecurityScore(c),
		)
	}
}

func printStats(st cookiekit.Stats) {
	fmt.Printf("\n%d cookies (%s) | %d first-party | %d third-party | %d session | %d persistent\n",
		st.Total,
		cookiekit.FormatBytes(st.TotalSize),
		st.FirstParty,
		st.ThirdParty,
		st.Session,
		st.Persistent,
	)
}

func printSites(cookies []cookiekit.Cookie) {
	breakdown := cookiekit.SiteBreakdown(cookies)
	sites := make([]string, 0, len(breakdown))
	for site := range breakdown {
		sites = append(sites, site)
	}
	sort.Slice(sites, func(i, j int) bool {
		if breakdown[sites[i]] != breakdown[sites[j]] {
			return breakdown[sites[i]] > breakdown[sites[j]]
		}
		return sites[i] < sites[j]
	})
	for _, site := range sites {
		fmt.Printf("%4d  %s\n", breakdown[site], site)
	}
}
