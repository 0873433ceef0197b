package schedule

// Package schedule models one participant's weekly availability as a set of
// grid slots. It is pure data: gesture handling, rendering and file I/O live
// elsewhere and reduce to Toggle and SetRange calls on this type.
