package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"

	"lightbox/internal/vgrid"
)

const zoomStep = 1.1

// ZoomPanArea displays a single photo with scroll-wheel zoom and drag
// panning. Zoom is clamped to the same range the grid uses. All methods
// run on the UI thread.
type ZoomPanArea struct {
	widget.BaseWidget

	src    image.Image
	raster *canvas.Raster

	scale            float64
	offsetX, offsetY float64
}

// NewZoomPanArea creates an empty viewer.
func NewZoomPanArea() *ZoomPanArea {
	z := &ZoomPanArea{scale: vgrid.DefaultZoom}
	z.raster = canvas.NewRaster(z.render)
	z.ExtendBaseWidget(z)
	return z
}

// SetImage replaces the displayed photo and fits it to the widget.
func (z *ZoomPanArea) SetImage(img image.Image) {
	z.src = img
	z.Reset()
}

// Reset fits the photo to the widget and centers it.
func (z *ZoomPanArea) Reset() {
	if z.src != nil {
		size := z.Size()
		b := z.src.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 && size.Width > 0 && size.Height > 0 {
			sx := float64(size.Width) / float64(b.Dx())
			sy := float64(size.Height) / float64(b.Dy())
			z.scale = clampZoom(min(sx, sy))
			z.offsetX = (float64(size.Width) - float64(b.Dx())*z.scale) / 2
			z.offsetY = (float64(size.Height) - float64(b.Dy())*z.scale) / 2
		} else {
			z.scale = vgrid.DefaultZoom
			z.offsetX, z.offsetY = 0, 0
		}
	}
	z.Refresh()
}

// Scale returns the current zoom factor.
func (z *ZoomPanArea) Scale() float64 { return z.scale }

// ZoomIn zooms one step about the widget center.
func (z *ZoomPanArea) ZoomIn() { z.zoomAt(z.center(), zoomStep) }

// ZoomOut zooms one step out about the widget center.
func (z *ZoomPanArea) ZoomOut() { z.zoomAt(z.center(), 1/zoomStep) }

// Scrolled zooms about the cursor position.
func (z *ZoomPanArea) Scrolled(ev *fyne.ScrollEvent) {
	factor := zoomStep
	if ev.Scrolled.DY < 0 {
		factor = 1 / zoomStep
	}
	z.zoomAt(ev.Position, factor)
}

// Dragged pans the photo.
func (z *ZoomPanArea) Dragged(ev *fyne.DragEvent) {
	z.offsetX += float64(ev.Dragged.DX)
	z.offsetY += float64(ev.Dragged.DY)
	z.Refresh()
}

// DragEnd is required by fyne.Draggable.
func (z *ZoomPanArea) DragEnd() {}

// DoubleTapped fits the photo back to the window.
func (z *ZoomPanArea) DoubleTapped(*fyne.PointEvent) { z.Reset() }

func (z *ZoomPanArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(z.raster)
}

func (z *ZoomPanArea) center() fyne.Position {
	size := z.Size()
	return fyne.NewPos(size.Width/2, size.Height/2)
}

// zoomAt rescales while keeping the content under p fixed in place.
func (z *ZoomPanArea) zoomAt(p fyne.Position, factor float64) {
	old := z.scale
	next := clampZoom(old * factor)
	if next == old {
		return
	}
	ratio := next / old
	z.offsetX = float64(p.X) - (float64(p.X)-z.offsetX)*ratio
	z.offsetY = float64(p.Y) - (float64(p.Y)-z.offsetY)*ratio
	z.scale = next
	z.Refresh()
}

func clampZoom(scale float64) float64 {
	if scale < vgrid.MinZoom {
		return vgrid.MinZoom
	}
	if scale > vgrid.MaxZoom {
		return vgrid.MaxZoom
	}
	return scale
}

// render draws the scaled photo into the raster buffer.
func (z *ZoomPanArea) render(w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if z.src == nil || w == 0 || h == 0 {
		return dst
	}
	b := z.src.Bounds()
	target := image.Rect(
		int(z.offsetX),
		int(z.offsetY),
		int(z.offsetX+float64(b.Dx())*z.scale),
		int(z.offsetY+float64(b.Dy())*z.scale),
	)
	xdraw.ApproxBiLinear.Scale(dst, target, z.src, b, xdraw.Over, nil)
	return dst
}
