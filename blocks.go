package slackify

import "github.com/riverfjs/slackify-go/internal/types"

// 导出类型别名
type (
	Block           = types.Block
	Mentions        = types.Mentions
	TextObject      = types.TextObject
	SectionBlock    = types.SectionBlock
	HeaderBlock     = types.HeaderBlock
	ImageBlock      = types.ImageBlock
	ContextBlock    = types.ContextBlock
	ContextElement  = types.ContextElement
	ImageElement    = types.ImageElement
	DividerBlock    = types.DividerBlock
	RichTextBlock   = types.RichTextBlock
	TableBlock      = types.TableBlock
	TableColumn     = types.TableColumn
	RichTextElement = types.RichTextElement

	RichTextSection      = types.RichTextSection
	RichTextList         = types.RichTextList
	RichTextPreformatted = types.RichTextPreformatted
	RichTextQuote        = types.RichTextQuote

	Inline    = types.Inline
	Style     = types.Style
	Text      = types.Text
	Link      = types.Link
	Emoji     = types.Emoji
	Date      = types.Date
	User      = types.User
	UserGroup = types.UserGroup
	Team      = types.Team
	Channel   = types.Channel
	Broadcast = types.Broadcast
	Color     = types.Color
)

// Block and element constructors. They never leave element slices nil.
var (
	NewTextObject           = types.NewTextObject
	NewSectionBlock         = types.NewSectionBlock
	NewMrkdwnSection        = types.NewMrkdwnSection
	NewHeaderBlock          = types.NewHeaderBlock
	NewImageBlock           = types.NewImageBlock
	NewImageElement         = types.NewImageElement
	NewContextBlock         = types.NewContextBlock
	NewDividerBlock         = types.NewDividerBlock
	NewRichTextBlock        = types.NewRichTextBlock
	NewTableBlock           = types.NewTableBlock
	NewRichTextSection      = types.NewRichTextSection
	NewRichTextList         = types.NewRichTextList
	NewRichTextPreformatted = types.NewRichTextPreformatted
	NewRichTextQuote        = types.NewRichTextQuote

	NewText      = types.NewText
	NewLink      = types.NewLink
	NewEmoji     = types.NewEmoji
	NewDate      = types.NewDate
	NewUser      = types.NewUser
	NewUserGroup = types.NewUserGroup
	NewTeam      = types.NewTeam
	NewChannel   = types.NewChannel
	NewBroadcast = types.NewBroadcast
	NewColor     = types.NewColor
)

// Type discriminants re-exported from the block model.
const (
	BlockTypeSection  = types.BlockTypeSection
	BlockTypeHeader   = types.BlockTypeHeader
	BlockTypeImage    = types.BlockTypeImage
	BlockTypeContext  = types.BlockTypeContext
	BlockTypeDivider  = types.BlockTypeDivider
	BlockTypeRichText = types.BlockTypeRichText
	BlockTypeTable    = types.BlockTypeTable

	TextTypeMrkdwn    = types.TextTypeMrkdwn
	TextTypePlainText = types.TextTypePlainText

	ListStyleBullet  = types.ListStyleBullet
	ListStyleOrdered = types.ListStyleOrdered
)
