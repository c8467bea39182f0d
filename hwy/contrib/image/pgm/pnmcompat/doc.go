// Copyright 2025 go-highway Authors
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

// Package pnmcompat checks the pgm codec against an independent Netpbm
// implementation, github.com/jbuchbinder/gopnm.
//
// The checks live outside package pgm because gopnm registers its own "P5"
// decoder with the standard library; linking it into the pgm test binary
// would shadow pgm's registration.
package pnmcompat
