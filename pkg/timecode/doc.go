// Package timecode parses, validates, and does arithmetic on SMPTE ST 12-1
// timecodes: the HH:MM:SS:FF / HH:MM:SS;FF notation addressing individual
// frames in video and film production.
//
// The package models frame rates as exact rationals so drop-frame arithmetic
// at 29.97 and 59.94 fps stays interoperable with professional video tooling,
// and converts both ways between symbolic timecode fields and absolute frame
// counts. All values are immutable; impossible timecodes (frame numbers that
// drop-frame counting skips) are rejected at construction rather than
// normalized.
package timecode
