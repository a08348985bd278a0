package ports

import "golang.org/x/text/language"

// MessageSource looks up localized messages.
//
//go:generate mockgen -source=message_source.go -destination=mocks/mock_message_source.go -package=mocks
type MessageSource interface {
	// Message returns the message for code in locale.
	// It returns domain.ErrNoSuchMessage when no bundle defines code.
	Message(code string, locale language.Tag) (string, error)
}
