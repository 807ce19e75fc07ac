// Package command implements the launcher's command language: tokenizing a
// line, converting tokens into typed handler arguments and dispatching to the
// handler registered under the first token.
//
// A line runs in one of two ways:
//   - RunNow tokenizes, parses and calls the handler before returning. Text
//     arguments may alias the line.
//   - CompileLater does the same parsing up front but captures owned copies
//     of every argument in a closure, so the command can fire later (from a
//     gesture binding) without re-tokenizing. Failures at that point go to the
//     diagnostic log because there is no caller left to return them to.
//
// Handlers have fixed, typed signatures such as
//
//	func(l launcher.Launcher, name string) (string, error)
//
// and are wrapped with Command0..Command3 together with one Param per
// argument. The wrapper checks arity, parses every argument, joins all parse
// failures into one ArgumentParseError and only then calls the handler.
//
// Grammar:
//
//	line    = name { " " arg }
//	arg     = word | '"' text '"'
//	gesture = "Swipe:" (Up|Down|Left|Right) ":" n | "Pinch:" (In|Out) ":" n | "Tap:" n
//
// Built-in commands: help, launch, show, hide, switch, on.
package command
