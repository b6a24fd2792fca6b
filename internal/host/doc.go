// Package host adapts a tcell terminal to the keymap Mapper.
//
// Terminals deliver key-down events only, repeating them while a key is
// held. The Tracker turns that stream into discrete press and release
// transitions: a key counts as held until its autorepeat stops arriving.
package host
