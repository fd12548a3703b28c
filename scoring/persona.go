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

package scoring

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gridwatt/siterank/params"
)

// Persona resolution statuses.
const (
	ResolutionResolved  = "resolved"
	ResolutionDefaulted = "defaulted"
	ResolutionInvalid   = "invalid"
)

// ErrZeroWeightSum is returned when caller-supplied weights sum to zero.
var ErrZeroWeightSum = errors.New("scoring: weight sum is zero")

// Resolution reports how a requested persona string was resolved, so
// callers can surface a warning on invalid input.
type Resolution struct {
	Persona string `json:"persona"`
	Status  string `json:"status"`
}

// ResolvePersona normalizes a requested persona. Empty input falls back
// to fallback with status "defaulted"; unknown input falls back with
// status "invalid".
func ResolvePersona(raw, fallback string) Resolution {
	p := strings.ToLower(strings.TrimSpace(raw))
	if p == "" {
		return Resolution{Persona: fallback, Status: ResolutionDefaulted}
	}
	if _, ok := params.PersonaWeights[p]; !ok {
		return Resolution{Persona: fallback, Status: ResolutionInvalid}
	}
	return Resolution{Persona: p, Status: ResolutionResolved}
}

// PersonaWeightVector returns a normalized copy of the persona's weight
// table. The stored tables sum to 1; normalization here guards against
// test overrides that do not.
func PersonaWeightVector(persona string) map[string]float64 {
	w, ok := params.PersonaWeights[persona]
	if !ok {
		w = params.PersonaWeights[params.DefaultSupplyPersona]
	}
	out, _ := NormalizeWeights(w)
	return out
}

// NormalizeWeights returns a copy of w rescaled to sum to 1.0. Negative
// weights are rejected; a zero sum returns ErrZeroWeightSum.
func NormalizeWeights(w map[string]float64) (map[string]float64, error) {
	sum := 0.0
	for k, v := range w {
		if v < 0 {
			return nil, fmt.Errorf("scoring: negative weight for %q", k)
		}
		sum += v
	}
	if sum == 0 {
		return nil, ErrZeroWeightSum
	}
	out := make(map[string]float64, len(w))
	if math.Abs(sum-1) <= 1e-6 {
		for k, v := range w {
			out[k] = v
		}
		return out, nil
	}
	for k, v := range w {
		out[k] = v / sum
	}
	return out, nil
}

// TranslateFrontendWeights maps frontend weight keys to backend
// component keys. Keys already in backend form pass through; anything
// unrecognized is rejected.
func TranslateFrontendWeights(w map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(w))
	for k, v := range w {
		backend, ok := params.FrontendWeightKeys[k]
		if !ok {
			if !params.CustomWeightKeys[k] {
				return nil, fmt.Errorf("scoring: unknown weight key %q", k)
			}
			backend = k
		}
		out[backend] += v
	}
	return out, nil
}
