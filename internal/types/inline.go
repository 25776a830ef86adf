package types

// Style is the set of inline text flags. A nil *Style is the canonical form of "no
// style"; a Style with every flag false is never attached to an element.
type Style struct {
	Bold   bool `json:"bold,omitempty"`
	Italic bool `json:"italic,omitempty"`
	Strike bool `json:"strike,omitempty"`
	Code   bool `json:"code,omitempty"`
}

// IsEmpty reports whether no flag is set. A nil style is empty.
func (s *Style) IsEmpty() bool {
	return s == nil || (!s.Bold && !s.Italic && !s.Strike && !s.Code)
}

// Canonical returns nil for an empty style and s otherwise.
func (s *Style) Canonical() *Style {
	if s.IsEmpty() {
		return nil
	}
	return s
}

// Merge returns a new style carrying every flag of s plus every flag of outer.
// The result is canonical.
func (s *Style) Merge(outer *Style) *Style {
	merged := &Style{}
	if s != nil {
		*merged = *s
	}
	if outer != nil {
		merged.Bold = merged.Bold || outer.Bold
		merged.Italic = merged.Italic || outer.Italic
		merged.Strike = merged.Strike || outer.Strike
		merged.Code = merged.Code || outer.Code
	}
	return merged.Canonical()
}

// Inline is one element of a rich text section, quote or preformatted block.
type Inline interface {
	InlineType() string
	StyleAttr() *Style
	SetStyle(*Style)
}

// Styled is embedded by every inline element.
type Styled struct {
	Style *Style `json:"style,omitempty"`
}

// StyleAttr returns the attached style, nil when unstyled.
func (s *Styled) StyleAttr() *Style { return s.Style }

// SetStyle attaches style in canonical form.
func (s *Styled) SetStyle(style *Style) { s.Style = style.Canonical() }

// Text is a literal text run.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Styled
}

func (*Text) InlineType() string { return InlineTypeText }

// Link is a hyperlink with optional display text.
type Link struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Text   string `json:"text,omitempty"`
	Unsafe bool   `json:"unsafe,omitempty"`
	Styled
}

func (*Link) InlineType() string { return InlineTypeLink }

// Emoji is a :shortcode: emoji.
type Emoji struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Unicode string `json:"unicode,omitempty"`
	Styled
}

func (*Emoji) InlineType() string { return InlineTypeEmoji }

// Date is a localized timestamp.
type Date struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Format    string `json:"format"`
	URL       string `json:"url,omitempty"`
	Fallback  string `json:"fallback,omitempty"`
	Styled
}

func (*Date) InlineType() string { return InlineTypeDate }

// User references a user ID.
type User struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
	Styled
}

func (*User) InlineType() string { return InlineTypeUser }

// UserGroup references a user group ID.
type UserGroup struct {
	Type        string `json:"type"`
	UserGroupID string `json:"usergroup_id"`
	Styled
}

func (*UserGroup) InlineType() string { return InlineTypeUserGroup }

// Team references a team ID.
type Team struct {
	Type   string `json:"type"`
	TeamID string `json:"team_id"`
	Styled
}

func (*Team) InlineType() string { return InlineTypeTeam }

// Channel references a channel ID.
type Channel struct {
	Type      string `json:"type"`
	ChannelID string `json:"channel_id"`
	Styled
}

func (*Channel) InlineType() string { return InlineTypeChannel }

// Broadcast is @here, @channel or @everyone.
type Broadcast struct {
	Type  string `json:"type"`
	Range string `json:"range"`
	Styled
}

func (*Broadcast) InlineType() string { return InlineTypeBroadcast }

// Color is a hex color swatch.
type Color struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Styled
}

func (*Color) InlineType() string { return InlineTypeColor }
