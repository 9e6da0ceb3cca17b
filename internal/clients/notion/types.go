package notion

const (
	BlockTypeHeading3         = "heading_3"
	BlockTypeBulletedListItem = "bulleted_list_item"
	BlockTypeImage            = "image"
)

// Block is the part of a Notion block the report reads or writes: the text
// of headings and list items, or the external URL of an image.
type Block struct {
	ID       string
	Type     string
	Text     string
	ImageURL string
}

type Page struct {
	ID string
}

// CreatePageRequest describes a page nested under an existing page.
type CreatePageRequest struct {
	ParentPageID string
	Title        string
	Icon         string
	CoverURL     string
}

func NewHeading3(content string) Block {
	return Block{Type: BlockTypeHeading3, Text: content}
}

func NewBulletedListItem(content string) Block {
	return Block{Type: BlockTypeBulletedListItem, Text: content}
}

func NewExternalImage(url string) Block {
	return Block{Type: BlockTypeImage, ImageURL: url}
}

// PlainText is the text content of a heading or list item; empty for images.
func (b Block) PlainText() string {
	return b.Text
}
