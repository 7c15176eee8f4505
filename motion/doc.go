// Package motion implements the timing side of the site's entrance effects:
// viewport visibility (one-shot and repeating), an eased number counter, a
// typewriter reveal, stagger offsets, an active-section tracker, multi-phase
// reveals and parallax offsets.
//
// Every hook is an independent state machine. Time comes from an injected
// Clock and viewport intersection from an injected ViewportWatcher, so the
// same code runs against real timers, against a VirtualClock when the server
// bakes timelines for the browser, and against fakes in tests.
//
// Hooks are safe for concurrent use. Durations and counts must be
// non-negative; negative values are not guarded.
package motion
