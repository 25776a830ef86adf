package types

// NewText returns a text run. style is stored in canonical form.
func NewText(text string, style *Style) *Text {
	return &Text{Type: InlineTypeText, Text: text, Styled: Styled{Style: style.Canonical()}}
}

func NewLink(url, text string) *Link {
	return &Link{Type: InlineTypeLink, URL: url, Text: text}
}

func NewEmoji(name string) *Emoji {
	return &Emoji{Type: InlineTypeEmoji, Name: name}
}

func NewDate(timestamp int64, format, fallback string) *Date {
	return &Date{Type: InlineTypeDate, Timestamp: timestamp, Format: format, Fallback: fallback}
}

func NewUser(id string) *User {
	return &User{Type: InlineTypeUser, UserID: id}
}

func NewUserGroup(id string) *UserGroup {
	return &UserGroup{Type: InlineTypeUserGroup, UserGroupID: id}
}

func NewTeam(id string) *Team {
	return &Team{Type: InlineTypeTeam, TeamID: id}
}

func NewChannel(id string) *Channel {
	return &Channel{Type: InlineTypeChannel, ChannelID: id}
}

func NewBroadcast(rng string) *Broadcast {
	return &Broadcast{Type: InlineTypeBroadcast, Range: rng}
}

func NewColor(value string) *Color {
	return &Color{Type: InlineTypeColor, Value: value}
}

// NewTextObject returns a text object of the given type (mrkdwn or plain_text).
func NewTextObject(textType, text string) *TextObject {
	return &TextObject{Type: textType, Text: text}
}

// NewMrkdwnSection returns a section block with mrkdwn text.
func NewMrkdwnSection(text string) *SectionBlock {
	return NewSectionBlock(NewTextObject(TextTypeMrkdwn, text))
}

func NewSectionBlock(text *TextObject) *SectionBlock {
	return &SectionBlock{Type: BlockTypeSection, Text: text}
}

func NewHeaderBlock(text string) *HeaderBlock {
	return &HeaderBlock{Type: BlockTypeHeader, Text: NewTextObject(TextTypePlainText, text)}
}

func NewImageBlock(url, alt string) *ImageBlock {
	return &ImageBlock{Type: BlockTypeImage, ImageURL: url, AltText: alt}
}

func NewImageElement(url, alt string) *ImageElement {
	return &ImageElement{Type: BlockTypeImage, ImageURL: url, AltText: alt}
}

func NewContextBlock(elements ...ContextElement) *ContextBlock {
	if elements == nil {
		elements = []ContextElement{}
	}
	return &ContextBlock{Type: BlockTypeContext, Elements: elements}
}

func NewDividerBlock() *DividerBlock {
	return &DividerBlock{Type: BlockTypeDivider}
}

// NewRichTextBlock never leaves Elements nil so that it encodes as [] rather than null.
func NewRichTextBlock(elements ...RichTextElement) *RichTextBlock {
	if elements == nil {
		elements = []RichTextElement{}
	}
	return &RichTextBlock{Type: BlockTypeRichText, Elements: elements}
}

func NewTableBlock(rows [][]*RichTextBlock) *TableBlock {
	if rows == nil {
		rows = [][]*RichTextBlock{}
	}
	return &TableBlock{Type: BlockTypeTable, Rows: rows}
}

func NewRichTextSection(elements ...Inline) *RichTextSection {
	if elements == nil {
		elements = []Inline{}
	}
	return &RichTextSection{Type: RichTextTypeSection, Elements: elements}
}

func NewRichTextList(style string, indent int, items ...*RichTextSection) *RichTextList {
	if items == nil {
		items = []*RichTextSection{}
	}
	return &RichTextList{Type: RichTextTypeList, Style: style, Indent: indent, Elements: items}
}

func NewRichTextPreformatted(elements ...Inline) *RichTextPreformatted {
	if elements == nil {
		elements = []Inline{}
	}
	return &RichTextPreformatted{Type: RichTextTypePreformatted, Elements: elements}
}

func NewRichTextQuote(elements ...Inline) *RichTextQuote {
	if elements == nil {
		elements = []Inline{}
	}
	return &RichTextQuote{Type: RichTextTypeQuote, Elements: elements}
}
