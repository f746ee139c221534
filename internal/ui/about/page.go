package about

import (
	"portfolio/internal/core/hover"
	"portfolio/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Page is the about tab: a grid of hoverable cards above a shared description.
type Page struct {
	panel       *hover.Panel
	description *widget.Label
	cards       []*hoverCard
	content     fyne.CanvasObject
}

// NewPage builds the about page for regions.
func NewPage(regions []model.AboutRegion) *Page {
	description := widget.NewLabel("")
	description.Wrapping = fyne.TextWrapWord
	description.Alignment = fyne.TextAlignCenter

	hoverRegions := make([]hover.Region, 0, len(regions))
	for _, region := range regions {
		hoverRegions = append(hoverRegions, hover.Region{ID: region.ID, Description: region.Description})
	}

	page := &Page{
		panel:       hover.NewPanel(hoverRegions, description),
		description: description,
	}

	objects := make([]fyne.CanvasObject, 0, len(regions))
	for _, region := range regions {
		id := region.ID
		title := region.Title
		if title == "" {
			title = id
		}
		card := newHoverCard(title, func() { page.panel.Enter(id) }, func() { page.panel.Leave(id) })
		page.cards = append(page.cards, card)
		objects = append(objects, card)
	}

	heading := widget.NewLabelWithStyle("Hover over a card to learn more", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	grid := container.NewGridWithColumns(columns(len(objects)), objects...)
	page.content = container.NewBorder(heading, description, nil, nil, grid)
	return page
}

// CanvasObject returns the page content.
func (page *Page) CanvasObject() fyne.CanvasObject {
	return page.content
}

// Description returns the text currently shown under the cards.
func (page *Page) Description() string {
	return page.description.Text
}

func columns(count int) int {
	switch {
	case count <= 0:
		return 1
	case count < 4:
		return count
	default:
		return 4
	}
}

type hoverCard struct {
	widget.BaseWidget
	card  *widget.Card
	onIn  func()
	onOut func()
}

var _ desktop.Hoverable = (*hoverCard)(nil)

func newHoverCard(title string, onIn, onOut func()) *hoverCard {
	card := &hoverCard{
		card:  widget.NewCard(title, "", nil),
		onIn:  onIn,
		onOut: onOut,
	}
	card.ExtendBaseWidget(card)
	return card
}

func (card *hoverCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(card.card)
}

func (card *hoverCard) MouseIn(*desktop.MouseEvent) {
	card.onIn()
}

func (card *hoverCard) MouseMoved(*desktop.MouseEvent) {}

func (card *hoverCard) MouseOut() {
	card.onOut()
}
