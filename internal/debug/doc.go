// Package debug is the scheduler's file-backed debug log.
//
// Nothing is written unless Init is called or the SCENE_DEBUG environment
// variable names a log file:
//
//	SCENE_DEBUG=/tmp/scene.log scene run
//
// Records are JSON lines written through log/slog.
package debug
