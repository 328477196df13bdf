package timelist

import (
	"sort"
	"strconv"
	"strings"

	"countdown/internal/core/model"
	apperrors "countdown/internal/errors"
)

// Saver persists the configuration after every mutation.
type Saver interface {
	Save(config model.Configuration) error
}

// List owns the saved custom durations. Values are positive, unique and kept
// in ascending order.
type List struct {
	presets []int
	items   []int
	saver   Saver
}

// New creates a list from a loaded configuration.
func New(config model.Configuration, saver Saver) *List {
	return &List{
		presets: append([]int(nil), config.PresetTimes...),
		items:   Normalize(config.CustomTimes),
		saver:   saver,
	}
}

// ParseSeconds converts user input into a positive number of seconds.
func ParseSeconds(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	seconds, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, apperrors.Wrapf(err, apperrors.ErrInvalidValue, "%q is not a whole number of seconds", trimmed)
	}
	if seconds <= 0 {
		return 0, apperrors.Newf(apperrors.ErrInvalidValue, "countdown must be a positive number of seconds, got %d", seconds)
	}
	return seconds, nil
}

// Normalize drops non-positive values and duplicates and sorts ascending.
func Normalize(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	result := make([]int, 0, len(values))
	for _, value := range values {
		if value <= 0 {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	sort.Ints(result)
	return result
}

// Items returns a copy of the saved durations.
func (list *List) Items() []int {
	return append([]int(nil), list.items...)
}

// Presets returns a copy of the preset durations.
func (list *List) Presets() []int {
	return append([]int(nil), list.presets...)
}

// Len returns the number of saved durations.
func (list *List) Len() int {
	return len(list.items)
}

// Configuration returns the configuration as it is persisted.
func (list *List) Configuration() model.Configuration {
	return model.Configuration{
		PresetTimes: list.Presets(),
		CustomTimes: list.Items(),
	}
}

// Add inserts seconds. A save failure keeps the new value in memory and is
// returned so the caller can report it.
func (list *List) Add(seconds int) error {
	if seconds <= 0 {
		return apperrors.Newf(apperrors.ErrInvalidValue, "countdown must be a positive number of seconds, got %d", seconds)
	}
	index := sort.SearchInts(list.items, seconds)
	if index < len(list.items) && list.items[index] == seconds {
		return apperrors.Newf(apperrors.ErrDuplicate, "custom time %d seconds already exists", seconds).
			WithDetail("seconds", seconds)
	}

	list.items = append(list.items, 0)
	copy(list.items[index+1:], list.items[index:])
	list.items[index] = seconds
	return list.persist()
}

// At returns the value at a selected index; a negative index means nothing
// is selected.
func (list *List) At(index int) (int, error) {
	if index < 0 || index >= len(list.items) {
		return 0, apperrors.New(apperrors.ErrNoSelection, "select a saved custom time first").
			WithDetail("index", index)
	}
	return list.items[index], nil
}

// RemoveAt deletes the value at a selected index and returns it.
func (list *List) RemoveAt(index int) (int, error) {
	seconds, err := list.At(index)
	if err != nil {
		return 0, err
	}
	list.items = append(list.items[:index], list.items[index+1:]...)
	return seconds, list.persist()
}

func (list *List) persist() error {
	if list.saver == nil {
		return nil
	}
	return list.saver.Save(list.Configuration())
}
