package converter

import (
	"regexp"
	"strconv"

	"github.com/riverfjs/slackify-go/internal/types"
)

type tokenKind int

const (
	tokenBroadcast tokenKind = iota
	tokenUser
	tokenColor
	tokenChannel
	tokenTeam
	tokenDate
	tokenEmoji
	tokenBareMention
	tokenBareChannel
)

// matchers 按优先级排列：同一起点同时命中时，靠前者胜出
var matchers = []struct {
	kind tokenKind
	re   *regexp.Regexp
}{
	{tokenBroadcast, regexp.MustCompile(`<!(here|channel|everyone)>`)},
	{tokenUser, regexp.MustCompile(`<@([\w.-]+)>`)},
	{tokenColor, regexp.MustCompile(`#[0-9a-fA-F]{6}`)},
	{tokenChannel, regexp.MustCompile(`<#([\w.-]+)>`)},
	{tokenTeam, regexp.MustCompile(`<!subteam\^([\w.-]+)>`)},
	{tokenDate, regexp.MustCompile(`<!date\^(\d+)\^([^|]+)\|([^>]+)>`)},
	{tokenEmoji, regexp.MustCompile(`:([\w+-]+):`)},
	{tokenBareMention, regexp.MustCompile(`@([\w.-]+)`)},
	{tokenBareChannel, regexp.MustCompile(`#([\w.-]+)`)},
}

// token is a match of one matcher. A token with literal set is an unmatched run.
type token struct {
	kind    tokenKind
	literal bool
	text    string
	groups  []string
}

// tokenize cuts text into literal runs and tokens, left to right. At each cursor the
// earliest-starting match wins and ties go to the matcher listed first. Every
// matcher's next match is cached and only searched again once the cursor passes it.
func tokenize(text string) []token {
	var tokens []token
	next := make([][]int, len(matchers))
	exhausted := make([]bool, len(matchers))
	cursor := 0

	for cursor < len(text) {
		best := -1
		for i, m := range matchers {
			if exhausted[i] {
				continue
			}
			if next[i] == nil || next[i][0] < cursor {
				loc := m.re.FindStringSubmatchIndex(text[cursor:])
				if loc == nil {
					exhausted[i] = true
					next[i] = nil
					continue
				}
				for j := range loc {
					if loc[j] >= 0 {
						loc[j] += cursor
					}
				}
				next[i] = loc
			}
			if best < 0 || next[i][0] < next[best][0] {
				best = i
			}
		}
		if best < 0 {
			break
		}

		loc := next[best]
		if loc[0] > cursor {
			tokens = append(tokens, token{literal: true, text: text[cursor:loc[0]]})
		}
		groups := make([]string, 0, len(loc)/2-1)
		for j := 2; j+1 < len(loc); j += 2 {
			if loc[j] >= 0 {
				groups = append(groups, text[loc[j]:loc[j+1]])
			} else {
				groups = append(groups, "")
			}
		}
		tokens = append(tokens, token{kind: matchers[best].kind, text: text[loc[0]:loc[1]], groups: groups})
		cursor = loc[1]
	}

	if cursor < len(text) {
		tokens = append(tokens, token{literal: true, text: text[cursor:]})
	}
	return tokens
}

// lookup treats a mapping to the empty string as absent.
func lookup(table map[string]string, name string) (string, bool) {
	id, ok := table[name]
	return id, ok && id != ""
}

// Resolver turns literal text into inline elements, resolving Slack tokens and bare
// @name / #name references through the mention tables.
type Resolver struct {
	Mentions     types.Mentions
	DetectColors bool
}

// Resolve returns the inline elements for text with style attached to each of them.
// Code-styled text is never scanned.
func (r *Resolver) Resolve(text string, style *types.Style) []types.Inline {
	if text == "" {
		return nil
	}
	style = style.Canonical()
	if style != nil && style.Code {
		return []types.Inline{types.NewText(text, style)}
	}

	var elements []types.Inline
	for _, tok := range tokenize(text) {
		var el types.Inline
		if !tok.literal {
			el = r.element(tok)
		}
		if el == nil {
			el = types.NewText(tok.text, nil)
		}
		el.SetStyle(style)
		elements = append(elements, el)
	}
	return elements
}

// element returns nil when the token stays literal.
func (r *Resolver) element(tok token) types.Inline {
	switch tok.kind {
	case tokenBroadcast:
		return types.NewBroadcast(tok.groups[0])
	case tokenUser:
		return types.NewUser(tok.groups[0])
	case tokenColor:
		if r.DetectColors {
			return types.NewColor(tok.text)
		}
	case tokenChannel:
		return types.NewChannel(tok.groups[0])
	case tokenTeam:
		return types.NewTeam(tok.groups[0])
	case tokenDate:
		ts, err := strconv.ParseInt(tok.groups[0], 10, 64)
		if err != nil {
			return nil
		}
		return types.NewDate(ts, tok.groups[1], tok.groups[2])
	case tokenEmoji:
		return types.NewEmoji(tok.groups[0])
	case tokenBareMention:
		name := tok.groups[0]
		if types.IsBroadcastRange(name) {
			return types.NewBroadcast(name)
		}
		if id, ok := lookup(r.Mentions.Users, name); ok {
			return types.NewUser(id)
		}
		if id, ok := lookup(r.Mentions.UserGroups, name); ok {
			return types.NewUserGroup(id)
		}
		if id, ok := lookup(r.Mentions.Teams, name); ok {
			return types.NewTeam(id)
		}
	case tokenBareChannel:
		if id, ok := lookup(r.Mentions.Channels, tok.groups[0]); ok {
			return types.NewChannel(id)
		}
	}
	return nil
}

// ConvertText rewrites resolvable bare @name and #name references in text into
// their bracketed mrkdwn form. Everything else is left untouched.
func (r *Resolver) ConvertText(text string) string {
	out := make([]byte, 0, len(text))
	for _, tok := range tokenize(text) {
		out = append(out, r.mrkdwnToken(tok)...)
	}
	return string(out)
}

func (r *Resolver) mrkdwnToken(tok token) string {
	if tok.literal {
		return tok.text
	}
	switch tok.kind {
	case tokenBareMention:
		name := tok.groups[0]
		if types.IsBroadcastRange(name) {
			return "<!" + name + ">"
		}
		if id, ok := lookup(r.Mentions.Users, name); ok {
			return "<@" + id + ">"
		}
		if id, ok := lookup(r.Mentions.UserGroups, name); ok {
			return "<!subteam^" + id + ">"
		}
		if id, ok := lookup(r.Mentions.Teams, name); ok {
			return "<!subteam^" + id + ">"
		}
	case tokenBareChannel:
		if id, ok := lookup(r.Mentions.Channels, tok.groups[0]); ok {
			return "<#" + id + ">"
		}
	}
	return tok.text
}
