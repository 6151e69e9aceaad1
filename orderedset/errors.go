// Copyright 2025 Naren Yellavula
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

package orderedset

import "errors"

// Sentinels used as panic values for programming errors. They never come
// back from a normal call; recover() and errors.Is to inspect them.
var (
	ErrMissingChild           = errors.New("orderedset: rotation without required child")
	ErrNilCompare             = errors.New("orderedset: nil comparison function")
	ErrConcurrentModification = errors.New("orderedset: set modified during iteration")
)

// Errors returned by Check.
var (
	ErrOrder   = errors.New("orderedset: ordering violated")
	ErrHeight  = errors.New("orderedset: stale height")
	ErrBalance = errors.New("orderedset: balance violated")
)
