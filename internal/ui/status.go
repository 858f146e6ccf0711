package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lightbox/internal/state"
)

// statusIndicator shows an indeterminate bar while a load is in flight.
type statusIndicator struct {
	bar *widget.ProgressBarInfinite
}

func newStatusIndicator() *statusIndicator {
	bar := widget.NewProgressBarInfinite()
	bar.Hide()
	bar.Stop()
	return &statusIndicator{bar: bar}
}

// SetLoading starts or stops the bar. Must be called on the UI thread.
func (si *statusIndicator) SetLoading(loading bool) {
	if loading {
		si.bar.Show()
		si.bar.Start()
		return
	}
	si.bar.Stop()
	si.bar.Hide()
}

// errorBanner renders the sticky error message with a dismiss button. The
// message only clears when the user dismisses it.
type errorBanner struct {
	content *fyne.Container
	label   *widget.Label
}

func newErrorBanner(onDismiss func()) *errorBanner {
	label := widget.NewLabel("")
	label.Importance = widget.DangerImportance
	label.Truncation = fyne.TextTruncateEllipsis
	dismiss := widget.NewButtonWithIcon("", theme.CancelIcon(), onDismiss)
	content := container.NewBorder(nil, nil, nil, dismiss, label)
	content.Hide()
	return &errorBanner{content: content, label: label}
}

// SetMessage shows or hides the banner. Must be called on the UI thread.
func (eb *errorBanner) SetMessage(message string) {
	if message == "" {
		eb.content.Hide()
		return
	}
	eb.label.SetText(message)
	eb.content.Show()
}

func (a *App) buildStatusBar() fyne.CanvasObject {
	a.statusLoading = newStatusIndicator()
	a.errorBanner = newErrorBanner(func() {
		a.store.Dispatch(state.ClearError{})
	})

	logUp := widget.NewButtonWithIcon("", theme.MoveUpIcon(), a.logs.NavigateUp)
	logDown := widget.NewButtonWithIcon("", theme.MoveDownIcon(), a.logs.NavigateDown)
	logNav := container.NewHBox(logUp, logDown)

	bar := container.NewBorder(nil, nil, nil,
		container.NewHBox(a.statusLoading.bar, logNav),
		a.logs.Label(),
	)
	return container.NewVBox(a.errorBanner.content, bar)
}
