package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// photoCell is one tile in the grid page: a thumbnail with the filename
// underneath, tappable to open the photo.
type photoCell struct {
	widget.BaseWidget

	image    *canvas.Image
	label    *widget.Label
	onTapped func()
}

func newPhotoCell(onTapped func()) *photoCell {
	c := &photoCell{onTapped: onTapped}
	c.image = canvas.NewImageFromResource(nil)
	c.image.FillMode = canvas.ImageFillContain
	c.image.ScaleMode = canvas.ImageScaleFastest
	c.label = widget.NewLabel("")
	c.label.Alignment = fyne.TextAlignCenter
	c.label.Truncation = fyne.TextTruncateEllipsis
	c.ExtendBaseWidget(c)
	return c
}

// SetPhoto updates the caption and clears any stale thumbnail.
func (c *photoCell) SetPhoto(filename string) {
	c.label.SetText(filename)
	c.image.Image = nil
	c.image.Refresh()
}

// SetThumbnail swaps in the decoded thumbnail. Must be called on the UI
// thread.
func (c *photoCell) SetThumbnail(img image.Image) {
	c.image.Image = img
	c.image.Refresh()
}

func (c *photoCell) Tapped(*fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

func (c *photoCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(
		container.NewBorder(nil, c.label, nil, nil, c.image),
	)
}
