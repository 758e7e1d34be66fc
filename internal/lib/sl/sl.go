// Package sl дополняет log/slog атрибутами, едиными для всего приложения.
package sl

import "log/slog"

// Err формирует slog.Attr с ключом "error" из текста ошибки,
// чтобы ошибки во всех записях лога выглядели одинаково:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
