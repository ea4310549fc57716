// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	BrokenEntriesFoundId Id = iota + 1
	NoScanDirsId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // reference documentation for the condition
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	brokenEntriesFoundIssue = &Issue{
		id: BrokenEntriesFoundId,
		mdMsg: `
# Broken desktop entries found

One or more .desktop files point at an executable that no longer exists or
is not runnable. Stale entries usually remain after a program was removed
without its launcher, or after a manually installed program moved.

## Things you can try
- Uninstalled programs: remove the leftover .desktop file
~~~
$ rm ~/.local/share/applications/<entry>.desktop
~~~
- Moved programs: fix the Exec= (and TryExec=) line to the new location
- Relative Exec paths: add a Path= line naming the working directory
- Re-run with more context:
~~~
$ deskscout scan --verbose
~~~`,
		docLinks: []HttpLink{
			"https://specifications.freedesktop.org/desktop-entry-spec/latest/",
		},
	}

	noScanDirsIssue = &Issue{
		id: NoScanDirsId,
		mdMsg: `
# Nothing to scan

The effective scan directory list is empty, so no .desktop files can be
inspected.

## Things you can try
- Drop --no-default to scan the standard XDG application directories
- Pass at least one directory explicitly:
~~~
$ deskscout scan --dir /usr/share/applications
~~~
- Inspect the effective directory list:
~~~
$ deskscout dirs
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

Your deskscout configuration file could not be read or contains invalid
values.

## Things you can try
- Check the file is valid YAML
- Remove the offending key to fall back to the built-in default
- See the effective configuration file location:
~~~
$ deskscout scan --help
~~~`,
	}

	issues = map[Id]*Issue{
		brokenEntriesFoundIssue.Id(): brokenEntriesFoundIssue,
		noScanDirsIssue.Id():         noScanDirsIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
