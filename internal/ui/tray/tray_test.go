package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTray struct {
	menus []*fyne.Menu
	icon  fyne.Resource
}

func (tray *fakeTray) SetSystemTrayMenu(menu *fyne.Menu) {
	tray.menus = append(tray.menus, menu)
}

func (tray *fakeTray) SetSystemTrayIcon(icon fyne.Resource) {
	tray.icon = icon
}

func (tray *fakeTray) SetSystemTrayWindow(fyne.Window) {}

func (tray *fakeTray) last() *fyne.Menu {
	return tray.menus[len(tray.menus)-1]
}

func labels(items []*fyne.MenuItem) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsSeparator {
			result = append(result, "-")
			continue
		}
		result = append(result, item.Label)
	}
	return result
}

func TestNew_InstallsMenu(t *testing.T) {
	fake := &fakeTray{}
	New(fake, Callbacks{})

	require.Len(t, fake.menus, 1)
	menu := fake.last()
	assert.Equal(t, []string{"Status: idle", "Show Countdown", "Start", "Settings", "-", "Quit"}, labels(menu.Items))
	assert.True(t, menu.Items[2].Disabled)
}

func TestSetTimes_BuildsStartSubmenu(t *testing.T) {
	fake := &fakeTray{}
	var started []int
	manager := New(fake, Callbacks{OnStart: func(seconds int) {
		started = append(started, seconds)
	}})

	manager.SetTimes([]int{20, 30}, []int{45})

	start := fake.last().Items[2]
	require.NotNil(t, start.ChildMenu)
	assert.False(t, start.Disabled)
	assert.Equal(t, []string{"20s", "30s", "-", "45s"}, labels(start.ChildMenu.Items))

	start.ChildMenu.Items[3].Action()
	start.ChildMenu.Items[0].Action()
	assert.Equal(t, []int{45, 20}, started)
}

func TestSetOpen_UpdatesStatus(t *testing.T) {
	fake := &fakeTray{}
	manager := New(fake, Callbacks{})

	manager.SetOpen(1)
	assert.Equal(t, "Status: 1 countdown open", fake.last().Items[0].Label)

	manager.SetOpen(3)
	assert.Equal(t, "Status: 3 countdowns open", fake.last().Items[0].Label)

	manager.SetOpen(-1)
	assert.Equal(t, "Status: idle", fake.last().Items[0].Label)
}

func TestCallbacks(t *testing.T) {
	fake := &fakeTray{}
	var shown, quit, prefs bool
	New(fake, Callbacks{
		OnShow:        func() { shown = true },
		OnQuit:        func() { quit = true },
		OnPreferences: func() { prefs = true },
	})

	menu := fake.last()
	menu.Items[1].Action()
	menu.Items[3].Action()
	menu.Items[5].Action()

	assert.True(t, shown)
	assert.True(t, prefs)
	assert.True(t, quit)
}
