package launcher

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"countdown/internal/core/model"
	"countdown/internal/core/timelist"
	apperrors "countdown/internal/errors"
	"countdown/internal/storage"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySaver struct {
	saves int
	err   error
}

func (saver *memorySaver) Save(model.Configuration) error {
	saver.saves++
	return saver.err
}

type fakeHistory struct {
	sessions []storage.Session
	limit    int
}

func (history *fakeHistory) Recent(_ context.Context, limit int) ([]storage.Session, error) {
	history.limit = limit
	return history.sessions, nil
}

type harness struct {
	launcher *Window
	saver    *memorySaver
	started  []int
	changed  [][]int
}

func newHarness(t *testing.T, custom ...int) *harness {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	config := model.DefaultConfiguration()
	config.CustomTimes = custom
	h := &harness{saver: &memorySaver{}}
	h.launcher = New(app, timelist.New(config, h.saver), Options{Version: "1.0.0"}, Callbacks{
		OnStart: func(seconds int) error {
			h.started = append(h.started, seconds)
			return nil
		},
		OnTimesChanged: func(_, custom []int) {
			h.changed = append(h.changed, custom)
		},
	})
	h.launcher.Show()
	return h
}

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		kind  Kind
		title string
	}{
		{"duplicate", apperrors.New(apperrors.ErrDuplicate, "dup").WithDetail("seconds", 30), KindWarning, "Duplicate value"},
		{"invalid", apperrors.New(apperrors.ErrInvalidValue, "bad"), KindError, "Value error"},
		{"no selection", apperrors.New(apperrors.ErrNoSelection, "none"), KindError, "Operation error"},
		{"load", apperrors.New(apperrors.ErrConfigLoad, "broken"), KindError, "Config load error"},
		{"save", apperrors.New(apperrors.ErrConfigSave, "denied"), KindError, "Config save error"},
		{"plain", errors.New("boom"), KindError, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := MessageFor(tt.err)
			assert.Equal(t, tt.kind, message.Kind)
			assert.Equal(t, tt.title, message.Title)
			assert.NotEmpty(t, message.Text)
		})
	}

	assert.Equal(t, "Custom time 30 seconds already exists.",
		MessageFor(apperrors.New(apperrors.ErrDuplicate, "dup").WithDetail("seconds", 30)).Text)
}

func TestPresetButtons_StartCountdown(t *testing.T) {
	h := newHarness(t)

	require.Len(t, h.launcher.presets, len(model.DefaultPresetTimes))
	for i, seconds := range model.DefaultPresetTimes {
		assert.Equal(t, fmt.Sprintf("%ds", seconds), h.launcher.presets[i].Text)
	}

	test.Tap(h.launcher.presets[2])
	test.Tap(h.launcher.presets[0])
	test.Tap(h.launcher.presets[2])

	assert.Equal(t, []int{50, 20, 50}, h.started)
	assert.Empty(t, h.changed)
}

func TestSaveEntry(t *testing.T) {
	h := newHarness(t, 60)

	h.launcher.entry.SetText(" 45 ")
	require.NoError(t, h.launcher.SaveEntry())

	assert.Equal(t, []int{45, 60}, h.launcher.times.Items())
	assert.Empty(t, h.launcher.entry.Text)
	assert.Equal(t, 1, h.saver.saves)
	assert.Equal(t, [][]int{{45, 60}}, h.changed)
	assert.Empty(t, h.started)
}

func TestSaveEntry_Rejects(t *testing.T) {
	h := newHarness(t, 60)

	for _, input := range []string{"", "abc", "0", "-5", "1.5"} {
		h.launcher.entry.SetText(input)
		err := h.launcher.SaveEntry()
		assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrInvalidValue), input)
	}

	h.launcher.entry.SetText("60")
	err := h.launcher.SaveEntry()
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrDuplicate))
	assert.Equal(t, "60", h.launcher.entry.Text)

	assert.Equal(t, []int{60}, h.launcher.times.Items())
	assert.Zero(t, h.saver.saves)
	assert.Empty(t, h.changed)
}

func TestSaveEntry_SaveFailureKeepsValue(t *testing.T) {
	h := newHarness(t)
	h.saver.err = apperrors.New(apperrors.ErrConfigSave, "read-only")

	h.launcher.entry.SetText("15")
	err := h.launcher.SaveEntry()

	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrConfigSave))
	assert.Equal(t, []int{15}, h.launcher.times.Items())
	assert.Len(t, h.changed, 1)
}

func TestUseEntry(t *testing.T) {
	h := newHarness(t)

	h.launcher.entry.SetText("90")
	require.NoError(t, h.launcher.UseEntry())
	assert.Equal(t, []int{90}, h.started)
	assert.Empty(t, h.launcher.times.Items())

	h.launcher.entry.SetText("soon")
	assert.True(t, apperrors.IsErrorCode(h.launcher.UseEntry(), apperrors.ErrInvalidValue))
	assert.Equal(t, []int{90}, h.started)
}

func TestUseSelected(t *testing.T) {
	h := newHarness(t, 10, 20, 30)

	err := h.launcher.UseSelected()
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrNoSelection))

	h.launcher.list.Select(1)
	require.NoError(t, h.launcher.UseSelected())
	assert.Equal(t, []int{20}, h.started)
	assert.Equal(t, 1, h.launcher.Selected())
}

func TestDeleteSelected(t *testing.T) {
	h := newHarness(t, 10, 20, 30)

	err := h.launcher.DeleteSelected()
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrNoSelection))
	assert.Zero(t, h.saver.saves)

	h.launcher.list.Select(2)
	require.NoError(t, h.launcher.DeleteSelected())

	assert.Equal(t, []int{10, 20}, h.launcher.times.Items())
	assert.Equal(t, -1, h.launcher.Selected())
	assert.Equal(t, 1, h.saver.saves)
	assert.Equal(t, [][]int{{10, 20}}, h.changed)
	assert.NotNil(t, h.launcher.window.Canvas().Overlays().Top())
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "No countdowns yet.", FormatHistory(nil))

	ended := time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)
	text := FormatHistory([]storage.Session{
		{Seconds: 30, EndedAt: ended, Outcome: storage.OutcomeExpired},
		{Seconds: 200, EndedAt: ended.Add(-time.Hour), Outcome: storage.OutcomeCancelled},
	})
	assert.Equal(t, "2026-03-01 09:30  30s  expired\n2026-03-01 08:30  200s  cancelled", text)
}

func TestShowHistory_UsesLimit(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	history := &fakeHistory{}
	launcher := New(app, timelist.New(model.DefaultConfiguration(), nil), Options{History: history}, Callbacks{})
	launcher.Show()
	launcher.showHistory()

	assert.Equal(t, historyLimit, history.limit)
	assert.NotNil(t, launcher.window.Canvas().Overlays().Top())
}
