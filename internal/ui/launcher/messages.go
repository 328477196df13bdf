package launcher

import (
	"fmt"

	apperrors "countdown/internal/errors"
)

// Kind selects the dialog icon for a message.
type Kind int

const (
	KindInfo Kind = iota
	KindWarning
	KindError
)

// Message is a user-facing dialog.
type Message struct {
	Kind  Kind
	Title string
	Text  string
}

// MessageFor maps an error to the dialog shown to the user.
func MessageFor(err error) Message {
	switch apperrors.GetErrorCode(err) {
	case apperrors.ErrDuplicate:
		text := "This custom time already exists."
		if seconds, ok := apperrors.GetErrorDetails(err)["seconds"].(int); ok {
			text = fmt.Sprintf("Custom time %d seconds already exists.", seconds)
		}
		return Message{Kind: KindWarning, Title: "Duplicate value", Text: text}
	case apperrors.ErrInvalidValue:
		return Message{Kind: KindError, Title: "Value error", Text: "Enter a valid positive whole number of seconds."}
	case apperrors.ErrNoSelection:
		return Message{Kind: KindError, Title: "Operation error", Text: "Select a saved custom time first."}
	case apperrors.ErrConfigLoad:
		return Message{Kind: KindError, Title: "Config load error", Text: fmt.Sprintf("Could not load saved times, using defaults: %v", err)}
	case apperrors.ErrConfigSave:
		return Message{Kind: KindError, Title: "Config save error", Text: fmt.Sprintf("Could not save times: %v", err)}
	case apperrors.ErrSettings:
		return Message{Kind: KindError, Title: "Settings error", Text: err.Error()}
	case apperrors.ErrHistory:
		return Message{Kind: KindError, Title: "History error", Text: err.Error()}
	default:
		return Message{Kind: KindError, Title: "Error", Text: err.Error()}
	}
}

// Deleted confirms a removed custom time.
func Deleted(seconds int) Message {
	return Message{
		Kind:  KindInfo,
		Title: "Operation successful",
		Text:  fmt.Sprintf("Custom time %d seconds deleted.", seconds),
	}
}
