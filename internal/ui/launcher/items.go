package launcher

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// timeItem is a saved-times row that reacts to double and secondary taps.
type timeItem struct {
	widget.Label
	index    widget.ListItemID
	launcher *Window
}

func newTimeItem(launcher *Window) *timeItem {
	item := &timeItem{launcher: launcher, index: -1}
	item.ExtendBaseWidget(item)
	return item
}

func (item *timeItem) bind(index widget.ListItemID, seconds int) {
	item.index = index
	item.SetText(fmt.Sprintf("%ds", seconds))
}

func (item *timeItem) Tapped(*fyne.PointEvent) {
	item.launcher.list.Select(item.index)
}

func (item *timeItem) DoubleTapped(*fyne.PointEvent) {
	item.launcher.list.Select(item.index)
	item.launcher.Report(item.launcher.UseSelected())
}

func (item *timeItem) TappedSecondary(event *fyne.PointEvent) {
	item.launcher.list.Select(item.index)
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Use", func() {
			item.launcher.Report(item.launcher.UseSelected())
		}),
		fyne.NewMenuItem("Delete", func() {
			item.launcher.Report(item.launcher.DeleteSelected())
		}),
	)
	canvas := fyne.CurrentApp().Driver().CanvasForObject(item)
	if canvas == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(menu, canvas, event.AbsolutePosition)
}
