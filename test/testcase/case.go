// Copyright 2026 The go-rupeeledger Authors
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

package testcase

import (
	"github.com/rupeeledger/go-rupeeledger/bank"
)

var cases []TestCase

// Register the input test case in the global cases slice.
func Register(tc TestCase) {
	cases = append(cases, tc)
}

// Cases returns the registered test cases.
func Cases() []TestCase {
	return cases
}

// TestCase abstracts a generic end-to-end scenario against a seeded
// directory. Each concrete case should have the Run method
// implemented and leave the directory in a consistent state.
type TestCase interface {
	Desc() string
	Run(dir *bank.Directory) error
}
