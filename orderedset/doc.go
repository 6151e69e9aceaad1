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

// Package orderedset provides an ordered set of unique values kept in an
// AVL tree. Insert, Remove and Contains are O(log n); iteration yields the
// values in ascending order.
//
// Note: a Set is not safe for concurrent use. Access it from a single
// goroutine or guard the whole set with a mutex.
//
// Iterators hold references into the tree. Advancing an iterator after the
// set has been changed by Insert, Remove or Clear panics.
package orderedset
