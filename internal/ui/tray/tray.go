package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Countdown"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStart       func(seconds int)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	presets    []int
	custom     []int
	open       int
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}
	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.refreshStatus()
	manager.refreshMenu()
	return manager
}

// SetTimes replaces the quick-start entries.
func (manager *Manager) SetTimes(presets, custom []int) {
	manager.presets = append([]int(nil), presets...)
	manager.custom = append([]int(nil), custom...)
	manager.refreshMenu()
}

// SetOpen updates the number of open countdown windows.
func (manager *Manager) SetOpen(open int) {
	if open < 0 {
		open = 0
	}
	manager.open = open
	manager.refreshStatus()
	manager.refreshMenu()
}

// Menu builds the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	show := fyne.NewMenuItem("Show Countdown", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	start := fyne.NewMenuItem("Start", nil)
	start.ChildMenu = fyne.NewMenu("", manager.startItems()...)
	start.Disabled = len(start.ChildMenu.Items) == 0

	preferences := fyne.NewMenuItem("Settings", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	return fyne.NewMenu(menuTitle, manager.statusItem, show, start, preferences, fyne.NewMenuItemSeparator(), quit)
}

func (manager *Manager) startItems() []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(manager.presets)+len(manager.custom)+1)
	for _, seconds := range manager.presets {
		items = append(items, manager.startItem(seconds))
	}
	if len(manager.presets) > 0 && len(manager.custom) > 0 {
		items = append(items, fyne.NewMenuItemSeparator())
	}
	for _, seconds := range manager.custom {
		items = append(items, manager.startItem(seconds))
	}
	return items
}

func (manager *Manager) startItem(seconds int) *fyne.MenuItem {
	return fyne.NewMenuItem(fmt.Sprintf("%ds", seconds), func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart(seconds)
		}
	})
}

func (manager *Manager) refreshStatus() {
	switch manager.open {
	case 0:
		manager.statusItem.Label = "Status: idle"
	case 1:
		manager.statusItem.Label = "Status: 1 countdown open"
	default:
		manager.statusItem.Label = fmt.Sprintf("Status: %d countdowns open", manager.open)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}
