// Copyright 2021-2022 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cometmodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// An Error describes why a record couldn't be decoded. It carries a Code, the
// path of the offending field relative to the outermost record, and the
// underlying Go error.
//
// A failed decode may leave earlier fields of the record already assigned.
// Callers should discard the record rather than use it.
type Error struct {
	code   Code
	record string
	path   []string
	err    error
}

// NewError annotates any Go error with a code.
func NewError(c Code, underlying error) *Error {
	return &Error{code: c, err: underlying}
}

func (e *Error) Error() string {
	var text strings.Builder
	text.WriteString(e.code.String())
	if e.record != "" {
		text.WriteString(": ")
		text.WriteString(e.record)
	}
	if path := e.Path(); path != "" {
		if e.record != "" {
			text.WriteString(".")
		} else {
			text.WriteString(": ")
		}
		text.WriteString(path)
	}
	if e.err != nil {
		if msg := e.err.Error(); msg != "" {
			text.WriteString(": ")
			text.WriteString(msg)
		}
	}
	return text.String()
}

// Unwrap allows errors.Is and errors.As access to the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the error's code.
func (e *Error) Code() Code {
	return e.code
}

// Record returns the name of the outermost record being decoded, if known.
func (e *Error) Record() string {
	return e.record
}

// Path returns the location of the offending value, such as
// "Destinations[2].Status". It's empty when the top-level value itself was
// rejected.
func (e *Error) Path() string {
	var path strings.Builder
	for _, segment := range e.path {
		if path.Len() > 0 && !strings.HasPrefix(segment, "[") {
			path.WriteString(".")
		}
		path.WriteString(segment)
	}
	return path.String()
}

// CodeOf returns the error's code if it is or wraps an *Error and CodeUnknown
// otherwise.
func CodeOf(err error) Code {
	if modelErr, ok := asError(err); ok {
		return modelErr.Code()
	}
	return CodeUnknown
}

// errorf calls fmt.Errorf with the supplied template and arguments, then wraps
// the resulting error.
func errorf(c Code, template string, args ...any) *Error {
	return NewError(c, fmt.Errorf(template, args...))
}

// errTypeMismatch reports a value of the wrong kind.
func errTypeMismatch(want string, got Value) *Error {
	return errorf(CodeTypeMismatch, "expected %s, got %s", want, got.Kind())
}

// asError uses errors.As to unwrap any error and look for an *Error.
func asError(err error) (*Error, bool) {
	var modelErr *Error
	ok := errors.As(err, &modelErr)
	return modelErr, ok
}

// atField prepends a field name to the error's path.
func atField(err error, name string) error {
	return prefixPath(err, name)
}

// atIndex prepends a sequence index to the error's path.
func atIndex(err error, index int) error {
	return prefixPath(err, "["+strconv.Itoa(index)+"]")
}

// atKey prepends a map key to the error's path.
func atKey(err error, key string) error {
	return prefixPath(err, "["+strconv.Quote(key)+"]")
}

func prefixPath(err error, segment string) error {
	modelErr, ok := asError(err)
	if !ok {
		modelErr = NewError(CodeUnknown, err)
	}
	path := make([]string, 0, len(modelErr.path)+1)
	path = append(path, segment)
	path = append(path, modelErr.path...)
	return &Error{
		code: modelErr.code,
		path: path,
		err:  modelErr.err,
	}
}

// inRecord stamps the outermost record name onto the error.
func inRecord(err error, record string) error {
	if err == nil {
		return nil
	}
	modelErr, ok := asError(err)
	if !ok {
		return &Error{code: CodeUnknown, record: record, err: err}
	}
	return &Error{
		code:   modelErr.code,
		record: record,
		path:   modelErr.path,
		err:    modelErr.err,
	}
}
