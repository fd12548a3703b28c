/*
Copyright © 2025 the SiteRank authors.
This file is part of SiteRank.

SiteRank is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SiteRank is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SiteRank.  If not, see <http://www.gnu.org/licenses/>.
*/

package catalog

import "strings"

// FloatField returns the first key in keys that holds a finite float,
// tolerating numeric strings.
func FloatField(rec Record, keys ...string) (float64, bool) {
	return firstFloat(rec, keys)
}

// IntField returns the first key in keys that holds an integer-valued
// number.
func IntField(rec Record, keys ...string) (int, bool) {
	f, ok := firstFloat(rec, keys)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// StringField returns the first key in keys that holds a non-empty
// string.
func StringField(rec Record, keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// BoolField returns the first key in keys that holds a boolean.
func BoolField(rec Record, keys ...string) (bool, bool) {
	for _, k := range keys {
		if b, ok := rec[k].(bool); ok {
			return b, true
		}
	}
	return false, false
}
