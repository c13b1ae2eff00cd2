// Copyright 2025 Ryan Muzzey
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

// Package bg3data implements reading Baldur's Gate 3 game data files in
// pure Go.
//
// Localization tables are stored in .loca files, one per language, mapping
// string handles to localized text. This package opens .loca files
// (optionally gzip or dictzip compressed), decodes them via the loca
// subpackage, and exports them as JSON. The locautil command provides a
// CLI on top of it.
package bg3data
