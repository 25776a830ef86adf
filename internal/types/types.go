package types

// Block type discriminants.
const (
	BlockTypeSection  = "section"
	BlockTypeHeader   = "header"
	BlockTypeImage    = "image"
	BlockTypeContext  = "context"
	BlockTypeDivider  = "divider"
	BlockTypeRichText = "rich_text"
	BlockTypeTable    = "table"
)

// Rich text container discriminants.
const (
	RichTextTypeSection      = "rich_text_section"
	RichTextTypeList         = "rich_text_list"
	RichTextTypePreformatted = "rich_text_preformatted"
	RichTextTypeQuote        = "rich_text_quote"
)

// Inline element discriminants.
const (
	InlineTypeText      = "text"
	InlineTypeLink      = "link"
	InlineTypeEmoji     = "emoji"
	InlineTypeDate      = "date"
	InlineTypeUser      = "user"
	InlineTypeUserGroup = "usergroup"
	InlineTypeTeam      = "team"
	InlineTypeChannel   = "channel"
	InlineTypeBroadcast = "broadcast"
	InlineTypeColor     = "color"
)

// Text object types.
const (
	TextTypeMrkdwn    = "mrkdwn"
	TextTypePlainText = "plain_text"
)

// List styles.
const (
	ListStyleBullet  = "bullet"
	ListStyleOrdered = "ordered"
)

// Broadcast ranges.
const (
	BroadcastHere     = "here"
	BroadcastChannel  = "channel"
	BroadcastEveryone = "everyone"
)

// IsBroadcastRange reports whether name is one of the three broadcast ranges.
func IsBroadcastRange(name string) bool {
	switch name {
	case BroadcastHere, BroadcastChannel, BroadcastEveryone:
		return true
	}
	return false
}

// Mentions holds the name → ID lookup tables used to resolve bare @name and #name tokens.
type Mentions struct {
	Users      map[string]string `yaml:"users" json:"users,omitempty"`
	Channels   map[string]string `yaml:"channels" json:"channels,omitempty"`
	UserGroups map[string]string `yaml:"user_groups" json:"userGroups,omitempty"`
	Teams      map[string]string `yaml:"teams" json:"teams,omitempty"`
}

// Block is one top-level Block Kit block.
type Block interface {
	BlockType() string
}

// TextObject is a Block Kit composition text object.
type TextObject struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Emoji    *bool  `json:"emoji,omitempty"`
	Verbatim bool   `json:"verbatim,omitempty"`
}

func (*TextObject) contextElement() {}

// ImageElement is an image inside a context block.
type ImageElement struct {
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

func (*ImageElement) contextElement() {}

// ContextElement is either a *TextObject or an *ImageElement.
type ContextElement interface {
	contextElement()
}

// SectionBlock is a section block; Accessory is passed through untouched.
type SectionBlock struct {
	Type      string        `json:"type"`
	Text      *TextObject   `json:"text,omitempty"`
	Fields    []*TextObject `json:"fields,omitempty"`
	Accessory any           `json:"accessory,omitempty"`
	BlockID   string        `json:"block_id,omitempty"`
}

func (*SectionBlock) BlockType() string { return BlockTypeSection }

// HeaderBlock is a header block. Its text is always plain_text.
type HeaderBlock struct {
	Type    string      `json:"type"`
	Text    *TextObject `json:"text"`
	BlockID string      `json:"block_id,omitempty"`
}

func (*HeaderBlock) BlockType() string { return BlockTypeHeader }

// ImageBlock is a standalone image.
type ImageBlock struct {
	Type     string      `json:"type"`
	ImageURL string      `json:"image_url"`
	AltText  string      `json:"alt_text"`
	Title    *TextObject `json:"title,omitempty"`
	BlockID  string      `json:"block_id,omitempty"`
}

func (*ImageBlock) BlockType() string { return BlockTypeImage }

// ContextBlock holds small text and image elements.
type ContextBlock struct {
	Type     string           `json:"type"`
	Elements []ContextElement `json:"elements"`
	BlockID  string           `json:"block_id,omitempty"`
}

func (*ContextBlock) BlockType() string { return BlockTypeContext }

// DividerBlock is a horizontal rule.
type DividerBlock struct {
	Type    string `json:"type"`
	BlockID string `json:"block_id,omitempty"`
}

func (*DividerBlock) BlockType() string { return BlockTypeDivider }

// RichTextBlock is the container of rich text elements.
type RichTextBlock struct {
	Type     string            `json:"type"`
	Elements []RichTextElement `json:"elements"`
	BlockID  string            `json:"block_id,omitempty"`
}

func (*RichTextBlock) BlockType() string { return BlockTypeRichText }

// TableColumn carries optional per-column settings.
type TableColumn struct {
	Width int `json:"width,omitempty"`
}

// TableBlock is a table whose cells are rich_text blocks.
type TableBlock struct {
	Type    string             `json:"type"`
	Columns []TableColumn      `json:"columns,omitempty"`
	Rows    [][]*RichTextBlock `json:"rows"`
	BlockID string             `json:"block_id,omitempty"`
}

func (*TableBlock) BlockType() string { return BlockTypeTable }

// RichTextElement is one element of a rich_text block.
type RichTextElement interface {
	RichTextType() string
}

// RichTextSection is a run of inline elements.
type RichTextSection struct {
	Type     string   `json:"type"`
	Elements []Inline `json:"elements"`
}

func (*RichTextSection) RichTextType() string { return RichTextTypeSection }

// RichTextList is one indentation level of a list; nested levels are siblings with a
// larger Indent.
type RichTextList struct {
	Type     string             `json:"type"`
	Style    string             `json:"style"`
	Indent   int                `json:"indent"`
	Offset   int                `json:"offset,omitempty"`
	Border   int                `json:"border,omitempty"`
	Elements []*RichTextSection `json:"elements"`
}

func (*RichTextList) RichTextType() string { return RichTextTypeList }

// RichTextPreformatted is a code block.
type RichTextPreformatted struct {
	Type     string   `json:"type"`
	Elements []Inline `json:"elements"`
	Border   int      `json:"border,omitempty"`
}

func (*RichTextPreformatted) RichTextType() string { return RichTextTypePreformatted }

// RichTextQuote is a block quote.
type RichTextQuote struct {
	Type     string   `json:"type"`
	Elements []Inline `json:"elements"`
	Border   int      `json:"border,omitempty"`
}

func (*RichTextQuote) RichTextType() string { return RichTextTypeQuote }
