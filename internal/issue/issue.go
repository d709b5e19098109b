// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	CorpusNotFoundId Id = iota + 1
	EmptyCorpusId
	FortuneFileUnreadableId
	NoShortFortuneId
	InvalidPatternId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
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

// Render renders the issue as terminal Markdown with the given glamour style
// ("dark", "light", "notty", or a path to a style file).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	corpusNotFoundIssue = &Issue{
		id: CorpusNotFoundId,
		mdMsg: `
# Fortune directory not found!

fortune-kind reads its quotes from a directory of plain text files.

## Search order:
1. ` + "`FORTUNE_DIR`" + ` (or ` + "`FORTUNE_OFF_DIR`" + ` for unkind fortunes)
2. ` + "`fortune_dir`" + ` in your config file
3. A folder named ` + "`fortunes`" + ` in the current directory

## Things you can try:
- Point the environment at your fortunes:
~~~
$ export FORTUNE_DIR=/usr/share/fortune-kind/fortunes
~~~
- Or run fortune-kind from the directory that contains ` + "`fortunes/`",
	}

	emptyCorpusIssue = &Issue{
		id: EmptyCorpusId,
		mdMsg: `
# No fortune files found!

The fortune directory exists but holds no regular files.

## Things you can try:
- Copy some fortune files into the directory
- Check that FORTUNE_DIR points at the files, not at their parent`,
	}

	fortuneFileUnreadableIssue = &Issue{
		id: FortuneFileUnreadableId,
		mdMsg: `
# Could not read a fortune file!

A file was listed in the fortune directory but could not be read.
It may have been removed while fortune-kind was running, or its permissions
do not allow reading.

## Things you can try:
- Check the file permissions
- Run the command again`,
	}

	noShortFortuneIssue = &Issue{
		id: NoShortFortuneId,
		mdMsg: `
# No fortune is short enough!

Each extra ` + "`-s`" + ` halves the maximum length, and the file that was picked
has no quote within the limit.

## Things you can try:
- Use fewer ` + "`-s`" + ` flags
- Use ` + "`--length N`" + ` to set an explicit byte limit
- Run the command again; another file may be picked`,
	}

	invalidPatternIssue = &Issue{
		id: InvalidPatternId,
		mdMsg: `
# Invalid search pattern!

` + "`--find`" + ` takes a regular expression (RE2 syntax).
Plain words work as-is; characters like ` + "`( [ * + ?`" + ` need a backslash.

## Examples:
~~~
$ fortune-kind --find 'linux|unix'
$ fortune-kind --find '\(sic\)'
~~~`,
		docLinks: []HttpLink{"https://github.com/google/re2/wiki/Syntax"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your configuration file contains errors.

## Things you can try:
- Check your config file for CUE syntax errors
- Show the effective configuration:
~~~
$ fortune-kind config show
~~~
- Reset to defaults by removing the config file and running:
~~~
$ fortune-kind config init
~~~`,
	}

	issues = map[Id]*Issue{
		corpusNotFoundIssue.Id():        corpusNotFoundIssue,
		emptyCorpusIssue.Id():           emptyCorpusIssue,
		fortuneFileUnreadableIssue.Id(): fortuneFileUnreadableIssue,
		noShortFortuneIssue.Id():        noShortFortuneIssue,
		invalidPatternIssue.Id():        invalidPatternIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
