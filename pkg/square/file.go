// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package square

import (
	"errors"
)

// File represents a file (column) on a chessboard.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH

	FileNone File = -1
)

// String converts the given File into its string representation.
func (f File) String() string {
	return string(rune('a' + f))
}

// NewFileFromString parses a File from its string representation.
func NewFileFromString(from string) (File, error) {
	if len(from) != 1 || from[0] < 'a' || from[0] > 'h' {
		return FileNone, errors.New("file: invalid file string")
	}

	return File(from[0] - 'a'), nil
}

// Distance returns the absolute distance between two Files.
func (f File) Distance(other File) int {
	d := int(f) - int(other)
	if d < 0 {
		return -d
	}
	return d
}
