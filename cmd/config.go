package cmd

import "time"

const (
	// DEF_COOKIE_TTL is the lifetime given to cookies created without an
	// explicit expiry.
	DEF_COOKIE_TTL = 365 * 24 * time.Hour
)

const DESCRIPTION = `
Cookpit is a live cookie inspector for Chromium browsers. It
watches the browser cookie jar over the DevTools protocol,
classifies every cookie by party and vendor, and lets you
list, watch, edit and clear cookies from the terminal.
`

const (
	ListDescription = `The list command collects the cookies a page can see and
prints them with their party, vendor, size and expiry.

Example:
        cookpit list https://example.com
        cookpit list https://example.com --filter thirdParty --sort size
        cookpit list https://example.com --by-site

`
	WatchDescription = `The watch command opens a live session for a page and
streams every cookie change the browser reports, newest
first, until interrupted.

Example:
        cookpit watch https://example.com
        cookpit watch https://example.com --screenshot page.png

`
	SetDescription = `The set command creates or overwrites one cookie. Unless
told otherwise, the cookie is created secure, lax, on path
/ and with a one-year expiry.

Example:
        cookpit set sid s3cret --domain example.com
        cookpit set sid s3cret --domain example.com --session

`
	RemoveDescription = `The rm command deletes one cookie identified by its name,
domain and path.

Example:
        cookpit rm sid --domain example.com

`
	ClearDescription = `The clear command deletes every cookie a page can see.
Removals are attempted independently; a failure never
aborts the rest.

Example:
        cookpit clear https://example.com

`
	DaemonDescription = `The daemon command runs the cookpit daemon in the
foreground. The daemon attaches to the browser named by
COOKPIT_CDP_URL, or launches a headless one, and serves
clients on the cookpit socket.

Example:
        cookpit daemon

`
)
