package timelist

import (
	"errors"
	"testing"

	"countdown/internal/core/model"
	apperrors "countdown/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	saved []model.Configuration
	err   error
}

func (saver *recordingSaver) Save(config model.Configuration) error {
	saver.saved = append(saver.saved, config)
	return saver.err
}

func (saver *recordingSaver) last() model.Configuration {
	return saver.saved[len(saver.saved)-1]
}

func newList(t *testing.T, custom ...int) (*List, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	config := model.DefaultConfiguration()
	config.CustomTimes = custom
	return New(config, saver), saver
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"45", 45, false},
		{"  90 ", 90, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeconds(tt.input)
			if tt.wantErr {
				assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrInvalidValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []int{5, 10, 30}, Normalize([]int{30, 5, -1, 10, 0, 5}))
	assert.Equal(t, []int{}, Normalize(nil))
}

func TestAdd_InsertsSortedAndPersists(t *testing.T) {
	list, saver := newList(t, 10, 300)

	for _, value := range []int{120, 5, 900} {
		require.NoError(t, list.Add(value))
	}

	want := []int{5, 10, 120, 300, 900}
	assert.Equal(t, want, list.Items())
	require.Len(t, saver.saved, 3)
	assert.Equal(t, want, saver.last().CustomTimes)
	assert.Equal(t, model.DefaultPresetTimes, saver.last().PresetTimes)
}

func TestAdd_ContainsValueExactlyOnce(t *testing.T) {
	for _, value := range []int{1, 7, 60, 3600, 99999} {
		list, _ := newList(t, 7, 60)
		err := list.Add(value)

		count := 0
		for _, item := range list.Items() {
			if item == value {
				count++
			}
		}
		assert.Equal(t, 1, count, "value %d", value)
		assert.IsIncreasing(t, list.Items())
		if value == 7 || value == 60 {
			assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrDuplicate))
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestAdd_DuplicateLeavesListUnchanged(t *testing.T) {
	list, saver := newList(t, 20, 40)

	err := list.Add(20)

	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrDuplicate))
	assert.Equal(t, []int{20, 40}, list.Items())
	assert.Empty(t, saver.saved)
}

func TestAdd_InvalidLeavesListUnchanged(t *testing.T) {
	list, saver := newList(t, 20)

	for _, value := range []int{0, -10} {
		err := list.Add(value)
		assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrInvalidValue))
	}
	assert.Equal(t, []int{20}, list.Items())
	assert.Empty(t, saver.saved)
}

func TestAdd_SaveFailureKeepsValue(t *testing.T) {
	list, saver := newList(t)
	saver.err = apperrors.Wrap(errors.New("disk full"), apperrors.ErrConfigSave, "write times file")

	err := list.Add(15)

	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrConfigSave))
	assert.Equal(t, []int{15}, list.Items())
}

func TestRemoveAt(t *testing.T) {
	list, saver := newList(t, 10, 20, 30)

	removed, err := list.RemoveAt(1)

	require.NoError(t, err)
	assert.Equal(t, 20, removed)
	assert.Equal(t, []int{10, 30}, list.Items())
	assert.Equal(t, []int{10, 30}, saver.last().CustomTimes)
}

func TestRemoveAt_WithoutSelection(t *testing.T) {
	for _, index := range []int{-1, 3} {
		list, saver := newList(t, 10, 20, 30)

		_, err := list.RemoveAt(index)

		assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrNoSelection))
		assert.Equal(t, []int{10, 20, 30}, list.Items())
		assert.Empty(t, saver.saved)
	}
}

func TestAt(t *testing.T) {
	list, _ := newList(t, 10, 20)

	value, err := list.At(0)
	require.NoError(t, err)
	assert.Equal(t, 10, value)

	_, err = list.At(-1)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrNoSelection))
}

func TestItemsReturnsCopy(t *testing.T) {
	list, _ := newList(t, 10)
	items := list.Items()
	items[0] = 99
	assert.Equal(t, []int{10}, list.Items())
}

func TestNilSaver(t *testing.T) {
	list := New(model.DefaultConfiguration(), nil)
	require.NoError(t, list.Add(3))
	assert.Equal(t, 1, list.Len())
}
