package models

import "fmt"

// FilterOption narrows a snapshot by completion state.
type FilterOption string

const (
	FilterAll         FilterOption = "all"
	FilterToday       FilterOption = "today"
	FilterCompleted   FilterOption = "completed"
	FilterUncompleted FilterOption = "uncompleted"
)

// IsReset reports whether the option leaves the tracker list unfiltered.
func (f FilterOption) IsReset() bool {
	return f == FilterAll || f == FilterToday || f == ""
}

func ParseFilterOption(s string) (FilterOption, error) {
	switch f := FilterOption(s); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterToday, FilterCompleted, FilterUncompleted:
		return f, nil
	}
	return "", fmt.Errorf("invalid filter: %s (expected all, today, completed or uncompleted)", s)
}
