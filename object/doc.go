// Copyright 2016 The bergen authors
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

// Package object implements the assembler's output buffer: a growing byte
// store partitioned into address-anchored segments. The write cursor can
// jump to an arbitrary address at any time; a jump either reuses the
// current segment (if nothing has been written to it yet) or starts a new
// one.
package object
