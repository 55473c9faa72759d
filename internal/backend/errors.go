package backend

import "errors"

// ErrUnexpectedStatus возвращается, когда backend ответил статусом, отличным от 200
var ErrUnexpectedStatus = errors.New("unexpected backend status")

// ErrBackendUnavailable возвращается, когда backend отвечает ошибкой 5xx на проверку соединения
var ErrBackendUnavailable = errors.New("backend unavailable")
