package services

import "context"

type NoticeLevel int

const (
	NoticeError NoticeLevel = iota
	NoticeSuccess
)

func (l NoticeLevel) String() string {
	if l == NoticeSuccess {
		return "OK"
	}
	return "Error"
}

// Notice is a one-shot message for the user.
type Notice struct {
	Level   NoticeLevel
	Title   string
	Message string
}

// Notifier delivers notices to whatever view is in front of the user.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notice)

func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }

func errorNotice(message string) Notice {
	return Notice{Level: NoticeError, Title: "Error", Message: message}
}

func successNotice(message string) Notice {
	return Notice{Level: NoticeSuccess, Title: "Success", Message: message}
}
