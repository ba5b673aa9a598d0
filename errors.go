// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package book2md

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPackage is returned when a zip-based input lacks a required part.
var ErrInvalidPackage = errors.New("invalid package")

// UnsupportedFormatError reports an input no registered converter accepts.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
	MIMEType  string
}

func (e *UnsupportedFormatError) Error() string {
	var details []string
	if e.Extension != "" {
		details = append(details, "extension "+e.Extension)
	}
	if e.MIMEType != "" {
		details = append(details, "type "+e.MIMEType)
	}
	msg := "unsupported format"
	if e.Filename != "" {
		msg += " for " + e.Filename
	}
	if len(details) > 0 {
		msg += " (" + strings.Join(details, ", ") + ")"
	}
	return msg
}

// FailedConversionAttempt is one converter that accepted the input and failed.
type FailedConversionAttempt struct {
	Converter string
	Err       error
}

// ConversionError collects the failures of every converter that accepted an
// input. errors.Is and errors.As see each attempt's error.
type ConversionError struct {
	Filename string
	Attempts []FailedConversionAttempt
}

func (e *ConversionError) Error() string {
	var b strings.Builder
	b.WriteString("conversion failed")
	if e.Filename != "" {
		fmt.Fprintf(&b, " for %s", e.Filename)
	}
	switch len(e.Attempts) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ": %s: %v", e.Attempts[0].Converter, e.Attempts[0].Err)
	default:
		for _, a := range e.Attempts {
			fmt.Fprintf(&b, "\n  %s: %v", a.Converter, a.Err)
		}
	}
	return b.String()
}

func (e *ConversionError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// IsUnsupportedFormat reports whether err means no converter accepted the input.
func IsUnsupportedFormat(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}
