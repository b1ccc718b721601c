package tmplerr

import "log/slog"

var _ slog.LogValuer = (*Error)(nil)

// LogValue renders e as a slog group so that
//
//	slog.Error("render failed", "error", err)
//
// logs kind, msg and, when present, cause as separate attributes.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("kind", e.Kind().String()),
		slog.String("msg", e.Error()),
	}
	if cause := e.Cause(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	return slog.GroupValue(attrs...)
}
