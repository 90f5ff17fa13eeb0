// Copyright 2024 bbaa
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tellraw

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField           = errors.New("missing required field")
	ErrInvalidKey             = errors.New("invalid key")
	ErrInvalidColor           = errors.New("invalid color")
	ErrInvalidCallbackOptions = errors.New("invalid callback options")
	ErrUnboundCallback        = errors.New("callback click event is not bound to a command")
)

// MissingFieldError reports a required value that was never set on a builder.
type MissingFieldError struct {
	Builder string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Builder, ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

func missing(builder string, field string) error {
	return &MissingFieldError{Builder: builder, Field: field}
}
