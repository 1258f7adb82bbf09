// Copyright Veridise Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"fmt"
	"os"
)

// File represents a given source file, typically stored on disk.
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewFile constructs a source file from a given byte array.
func NewFile(filename string, bytes []byte) *File {
	// Runes make position arithmetic straightforward during parsing.
	return &File{filename, []rune(string(bytes))}
}

// ReadFile reads a source file from disk, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewFile(filename, bytes), nil
}

// Filename returns the filename associated with this source file.
func (p *File) Filename() string {
	return p.filename
}

// Contents returns the contents of this source file.
func (p *File) Contents() []rune {
	return p.contents
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (p *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{p, span, msg}
}

// EnclosingLine determines the line which encloses the start of a given span.
// If the span starts beyond the bounds of the file, the last physical line is
// returned.  Note the returned line is not guaranteed to enclose the entire
// span, since spans can cross line boundaries.
func (p *File) EnclosingLine(span Span) Line {
	var (
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(p.contents); i++ {
		if i == span.start {
			return Line{p.contents, Span{start, endOfLine(i, p.contents)}, num}
		} else if p.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{p.contents, Span{start, len(p.contents)}, num}
}

// Line provides information about a given line within a source file,
// including its line number (counting from 1) and its span within the
// original text.
type Line struct {
	// Original text.
	text []rune
	// Span of this line within the original text.
	span Span
	// Line number, counting from 1.
	number int
}

// String returns the text of this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number returns the line number of this line, counting from 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// SyntaxError is a structured error which retains the position in the
// original text where the error arose, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Region of the text being parsed where the error arose.
	span Span
	// Error message being reported.
	msg string
}

// SourceFile returns the source file on which this error was reported.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Line determines the line enclosing the start of this error.
func (p *SyntaxError) Line() Line {
	return p.srcfile.EnclosingLine(p.span)
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	line := p.Line()
	col := p.span.start - line.Start()
	//
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.filename, line.Number(), col+1, p.msg)
}

// Find the end of the line enclosing a given index.
func endOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	//
	return len(text)
}
