package quake

import "sort"

// StationCount counts the unique stations referenced by a set of arrivals
// through their picks: each arrival names a pick by pickID, and the pick's
// waveformID carries the network and station codes. With used=true only
// arrivals with a nonzero timeWeight are counted.
func StationCount(arrivals, picks []map[string]any, used bool) int {
	picksByID := make(map[string]map[string]any, len(picks))
	for _, p := range picks {
		if id, ok := p["@publicID"].(string); ok {
			picksByID[id] = p
		}
	}

	stations := make(map[string]struct{})
	for _, a := range arrivals {
		if used && !truthy(a["timeWeight"]) {
			continue
		}
		pickID, _ := a["pickID"].(string)
		p, ok := picksByID[pickID]
		if !ok {
			continue
		}
		w, ok := p["waveformID"].(map[string]any)
		if !ok {
			continue
		}
		net, _ := w["@networkCode"].(string)
		sta, _ := w["@stationCode"].(string)
		stations[net+"."+sta] = struct{}{}
	}
	return len(stations)
}

// GetQualityFromArrival derives origin quality counts and coverage from
// arrival data. Arrivals carry no waveform reference, so a station is
// identified by its (azimuth, distance) pair: picks from one station share
// both. Distance extrema and the azimuthal gap are left out when the
// arrivals carry no usable values.
func GetQualityFromArrival(arrivals []map[string]any) map[string]any {
	type station struct {
		azimuth, distance float64
	}

	associated := make(map[station]struct{})
	used := make(map[station]struct{})
	var azimuths, distances []float64

	for _, a := range arrivals {
		az, azOK := toFloat(a["azimuth"])
		dist, distOK := toFloat(a["distance"])
		if azOK {
			azimuths = append(azimuths, az)
		}
		if distOK {
			distances = append(distances, dist)
		}
		if !azOK || !distOK {
			continue
		}
		st := station{azimuth: az, distance: dist}
		associated[st] = struct{}{}
		if truthy(a["timeWeight"]) {
			used[st] = struct{}{}
		}
	}

	qual := map[string]any{
		"associatedStationCount": int64(len(associated)),
		"usedStationCount":       int64(len(used)),
	}
	if len(distances) > 0 {
		lo, hi := distances[0], distances[0]
		for _, d := range distances[1:] {
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
		qual["minimumDistance"] = lo
		qual["maximumDistance"] = hi
	}
	if gap, ok := azimuthalGap(azimuths); ok {
		qual["azimuthalGap"] = gap
	}
	return qual
}

// azimuthalGap returns the largest angular span not covered by any azimuth,
// including the wrap past north.
func azimuthalGap(azimuths []float64) (float64, bool) {
	if len(azimuths) < 2 {
		return 0, false
	}
	s := append([]float64(nil), azimuths...)
	sort.Float64s(s)

	gap := s[0] + 360 - s[len(s)-1]
	for i := 1; i < len(s); i++ {
		if d := s[i] - s[i-1]; d > gap {
			gap = d
		}
	}
	return gap, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func truthy(v any) bool {
	switch n := v.(type) {
	case float64:
		return n != 0
	case int64:
		return n != 0
	case int:
		return n != 0
	case bool:
		return n
	default:
		return false
	}
}
