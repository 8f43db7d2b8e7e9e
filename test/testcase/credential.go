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
	"errors"

	"github.com/rupeeledger/go-rupeeledger/bank"
)

func init() {
	Register(&CredentialChange{})
}

// CredentialChange tests the credential replacement flow.
type CredentialChange struct{}

func (cc *CredentialChange) Desc() string {
	return "testcase: credential change"
}

func (cc *CredentialChange) Run(dir *bank.Directory) error {
	a := dir.Lookup("456789")
	if a == nil {
		return errors.New("fixture account missing")
	}

	// wrong old credential changes nothing
	if a.ChangeCredential("0000", "5678") {
		return errors.New("credential change with wrong old credential should fail")
	}
	if _, err := dir.Authenticate("456789", "4567"); err != nil {
		return errors.New("credential mutated on failed change")
	}

	if !a.ChangeCredential("4567", "5678") {
		return errors.New("credential change with right old credential should succeed")
	}
	if _, err := dir.Authenticate("456789", "5678"); err != nil {
		return errors.New("new credential rejected")
	}
	if _, err := dir.Authenticate("456789", "4567"); err == nil {
		return errors.New("old credential still accepted")
	}
	return nil
}
