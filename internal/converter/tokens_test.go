package converter

import (
	"strings"
	"testing"

	"github.com/riverfjs/slackify-go/internal/types"
)

func testResolver() *Resolver {
	return &Resolver{
		Mentions: types.Mentions{
			Users:      map[string]string{"jdoe": "U1", "shared": "U2", "ghost": ""},
			Channels:   map[string]string{"general": "C1", "abcdef": "C2"},
			UserGroups: map[string]string{"devs": "S1", "shared": "S2"},
			Teams:      map[string]string{"acme": "T1"},
		},
		DetectColors: true,
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := types.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return string(data)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		style *types.Style
		want  string
	}{
		{"mapped user", "Hello @jdoe", nil,
			`[{"type":"text","text":"Hello "},{"type":"user","user_id":"U1"}]`},
		{"unmapped user stays literal", "Hello @unknown", nil,
			`[{"type":"text","text":"Hello "},{"type":"text","text":"@unknown"}]`},
		{"empty id is unmapped", "@ghost", nil,
			`[{"type":"text","text":"@ghost"}]`},
		{"code is never scanned", "<@U123>", &types.Style{Code: true},
			`[{"type":"text","text":"<@U123>","style":{"code":true}}]`},
		{"explicit user", "<@U123>", nil,
			`[{"type":"user","user_id":"U123"}]`},
		{"explicit broadcast", "<!here> hi", nil,
			`[{"type":"broadcast","range":"here"},{"type":"text","text":" hi"}]`},
		{"bare broadcast", "@channel", nil,
			`[{"type":"broadcast","range":"channel"}]`},
		{"explicit channel", "see <#C999>", nil,
			`[{"type":"text","text":"see "},{"type":"channel","channel_id":"C999"}]`},
		{"mapped channel", "#general", nil,
			`[{"type":"channel","channel_id":"C1"}]`},
		{"unmapped channel", "#random", nil,
			`[{"type":"text","text":"#random"}]`},
		{"subteam is a team", "<!subteam^S123>", nil,
			`[{"type":"team","team_id":"S123"}]`},
		{"date", "<!date^1392734382^{date_pretty}|Feb 18>", nil,
			`[{"type":"date","timestamp":1392734382,"format":"{date_pretty}","fallback":"Feb 18"}]`},
		{"emoji", "ok :thumbs-up:", nil,
			`[{"type":"text","text":"ok "},{"type":"emoji","name":"thumbs-up"}]`},
		{"color", "use #FF00aa", nil,
			`[{"type":"text","text":"use "},{"type":"color","value":"#FF00aa"}]`},
		{"color beats channel at same position", "#abcdef", nil,
			`[{"type":"color","value":"#abcdef"}]`},
		{"user group", "@devs", nil,
			`[{"type":"usergroup","usergroup_id":"S1"}]`},
		{"user before group", "@shared", nil,
			`[{"type":"user","user_id":"U2"}]`},
		{"team", "@acme", nil,
			`[{"type":"team","team_id":"T1"}]`},
		{"style applied to every element", "hi @jdoe", &types.Style{Bold: true},
			`[{"type":"text","text":"hi ","style":{"bold":true}},{"type":"user","user_id":"U1","style":{"bold":true}}]`},
		{"empty style omitted", "plain", &types.Style{},
			`[{"type":"text","text":"plain"}]`},
	}
	r := testResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustJSON(t, r.Resolve(tt.input, tt.style)); got != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveColorDetectionOff(t *testing.T) {
	r := testResolver()
	r.DetectColors = false
	want := `[{"type":"text","text":"#abcdef"}]`
	if got := mustJSON(t, r.Resolve("#abcdef", nil)); got != want {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestResolveEmpty(t *testing.T) {
	if got := testResolver().Resolve("", nil); len(got) != 0 {
		t.Errorf("Resolve(\"\") = %d elements, want 0", len(got))
	}
}

func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"Hello @jdoe, see #general and <#C1> at <!date^1^{date}|x> :wave: #00ff00 <!here>",
		"@@@ ## :: <> <@> <!subteam^> email a@b.co",
		"日本語 @用户 😀 #tag",
	}
	for _, input := range inputs {
		var sb strings.Builder
		for _, tok := range tokenize(input) {
			sb.WriteString(tok.text)
		}
		if sb.String() != input {
			t.Errorf("tokenize(%q) joined = %q", input, sb.String())
		}
	}
}

func TestConvertText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hi @jdoe", "hi <@U1>"},
		{"@nobody stays", "@nobody stays"},
		{"@here now", "<!here> now"},
		{"@devs and @acme", "<!subteam^S1> and <!subteam^T1>"},
		{"join #general, not #random", "join <#C1>, not #random"},
		{"#ff0000 :smile: <@U9>", "#ff0000 :smile: <@U9>"},
		{"#abcdef", "#abcdef"},
	}
	r := testResolver()
	for _, tt := range tests {
		if got := r.ConvertText(tt.input); got != tt.want {
			t.Errorf("ConvertText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func FuzzResolveLossless(f *testing.F) {
	f.Add("Hello @jdoe <#C1> #general :x: #abcdef")
	f.Add("<!date^12^{t}|fb> <!subteam^S1>")
	r := testResolver()
	f.Fuzz(func(t *testing.T, input string) {
		var sb strings.Builder
		for _, tok := range tokenize(input) {
			sb.WriteString(tok.text)
		}
		if sb.String() != input {
			t.Fatalf("tokenize lost characters: %q -> %q", input, sb.String())
		}
		for _, el := range r.Resolve(input, nil) {
			if s := el.StyleAttr(); s != nil && s.IsEmpty() {
				t.Fatalf("empty style attached to %s", el.InlineType())
			}
		}
	})
}
