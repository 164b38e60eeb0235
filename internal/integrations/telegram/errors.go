package telegram

import "errors"

var (
	// ErrSendFailed возвращается, когда Telegram не принял сообщение
	ErrSendFailed = errors.New("telegram: failed to send message")
)
