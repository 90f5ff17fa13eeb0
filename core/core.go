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

package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Output receives every console line.
var Output io.Writer = color.Output

func Printf(scope string, format string, a ...any) (n int, err error) {
	return fmt.Fprintf(Output, color.YellowString("[")+"%s"+color.YellowString("] ")+strings.TrimRight(format, "\r\n")+"\r\n", append([]any{scope}, a...)...)
}

func Println(scope string, a ...any) (n int, err error) {
	return Printf(scope, "%s", strings.TrimRight(fmt.Sprint(a...), "\r\n"))
}

func kPrintln(a ...any) (n int, err error) {
	return Println(color.MagentaString("TextDSL"), a...)
}
