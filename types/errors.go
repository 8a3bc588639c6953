/*
Copyright © 2025 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package types

import (
	"errors"
	"fmt"
)

// ErrConcurrentLoad is returned when a second top-level Load is issued on a
// Locator while one is already in flight.
var ErrConcurrentLoad = errors.New("concurrent load already in progress")

// SyntaxError wraps a CSS/preprocessor parse failure, carrying the original
// source position.
type SyntaxError struct {
	FilePath string
	Line     int
	Column   int
	Reason   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", e.FilePath, e.Line, e.Column, e.Reason)
}

// ResolutionError is returned when a resolver could not resolve a specifier.
type ResolutionError struct {
	Specifier     string
	RequestedFrom string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve %q from %s", e.Specifier, e.RequestedFrom)
}

// UnsupportedProtocolError is returned when a transformer reports a
// dependency whose protocol is not "file:".
type UnsupportedProtocolError struct {
	Specifier string
	Protocol  string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("unsupported protocol %q for dependency %q", e.Protocol, e.Specifier)
}

// ConcurrentLoadError is returned when Load is called while another
// top-level Load is in flight on the same Locator.
type ConcurrentLoadError struct {
	FilePath string
}

func (e *ConcurrentLoadError) Error() string {
	return fmt.Sprintf("load of %s rejected: %v", e.FilePath, ErrConcurrentLoad)
}

func (e *ConcurrentLoadError) Unwrap() error {
	return ErrConcurrentLoad
}

// IOError wraps a stat/read failure encountered while loading a file.
type IOError struct {
	FilePath string
	Op       string
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.FilePath, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
