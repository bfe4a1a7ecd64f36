// This file is part of b93 - https://github.com/derrickturk/b93
//
// Copyright 2023 The b93 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import "github.com/pkg/errors"

// setRawIO attempts to set fd to raw IO and returns a function to restore IO
// settings as they were before.
func setRawIO(fd uintptr) (func(), error) {
	return nil, errors.New("raw IO not supported")
}
