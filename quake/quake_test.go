package quake_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qmlutil/quake"
)

func TestResourceURIGenerator(t *testing.T) {
	t.Parallel()

	makeRID := quake.NewResourceURIGenerator()
	assert.Equal(t, "smi:local/foo", makeRID.URI("foo"))

	custom := &quake.ResourceURIGenerator{Schema: "quakeml", AuthorityID: "org.spam"}
	assert.Equal(t, "quakeml:org.spam/foo#bar", custom.URI("foo", "bar"))
}

func TestRFC3339(t *testing.T) {
	t.Parallel()

	dt := time.Date(2015, 1, 2, 15, 4, 56, 789000*1000, time.UTC)
	assert.Equal(t, "2015-01-02T15:04:56.789000Z", quake.RFC3339(dt))
}

func TestTimestampToISO(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2015-12-29T14:03:46.194850Z", quake.TimestampToISO(1451397826.19485))
}

func TestFindPreferredMag(t *testing.T) {
	t.Parallel()

	mags := []map[string]any{
		{"@publicID": "smi:local.test/netmag/123", "type": "md"},
		{"@publicID": "smi:local.test/netmag/121", "type": "mw"},
		{"@publicID": "smi:local.test/netmag/124", "type": "mw"},
		{"@publicID": "smi:local.test/netmag/122", "type": "ml"},
	}

	assert.Equal(t, "smi:local.test/netmag/124", quake.FindPreferredMag(mags, []string{"mw", "ml"}))
	assert.Equal(t, "smi:local.test/netmag/122", quake.FindPreferredMag(mags, []string{"mr", "ml", "md"}))
	assert.Equal(t, "", quake.FindPreferredMag(mags, []string{"mb"}))
}

func TestGetPreferred(t *testing.T) {
	t.Parallel()

	items := []map[string]any{
		{"@publicID": "smi:local.test/123"},
		{"@publicID": "smi:local.test/124"},
		{"@publicID": "smi:local.test/125"},
	}

	got := quake.GetPreferred("smi:local.test/125", items)
	require.NotNil(t, got)
	assert.Equal(t, items[2], got)

	assert.Nil(t, quake.GetPreferred("smi:local.test/999", items))
}

func TestANSSParams(t *testing.T) {
	t.Parallel()

	params := quake.ANSSParams("XX", 12345678)
	assert.Equal(t, "12345678", params["@catalog:eventid"])
	assert.Equal(t, "xx12345678", params["@catalog:dataid"])
	assert.Equal(t, "xx", params["@catalog:datasource"])
	assert.Equal(t, "xx", params["@catalog:eventsource"])

	padded := quake.ANSSParams("NN", 42)
	assert.Equal(t, "00000042", padded["@catalog:eventid"])
}

func TestExtractEType(t *testing.T) {
	t.Parallel()

	origin := map[string]any{
		"comment": []any{
			map[string]any{
				"@id":  "smi:local.test/comment/867-5309",
				"text": "Jenny",
			},
			map[string]any{
				"@id":  "smi:local.test/origin/1234567#etype",
				"text": "LF",
			},
		},
	}

	assert.Equal(t, "LF", quake.ExtractEType(origin))
	assert.Equal(t, "", quake.ExtractEType(map[string]any{}))
}

func TestEpochTime(t *testing.T) {
	t.Parallel()

	want := time.Date(2015, 12, 29, 14, 3, 46, 194850*1000, time.UTC)
	assert.Equal(t, want, quake.EpochTime(1451397826.19485))
}

func TestStationCount(t *testing.T) {
	t.Parallel()

	arrivals := []map[string]any{
		{
			"@publicID":  "smi:local/assoc/00000000-10000001",
			"pickID":     "smi:local/arrival/10000001",
			"timeWeight": 1.0,
		},
		{
			"@publicID":  "smi:local/assoc/00000000-10000002",
			"pickID":     "smi:local/arrival/10000002",
			"timeWeight": 0.0,
		},
		{
			"@publicID":  "smi:local/assoc/00000000-10000003",
			"pickID":     "smi:local/arrival/10000003",
			"timeWeight": 0.0,
		},
	}
	picks := []map[string]any{
		{
			"@publicID": "smi:local/arrival/10000001",
			"waveformID": map[string]any{
				"@networkCode": "XX", "@stationCode": "LAB1", "@channelCode": "HHZ",
			},
		},
		{
			"@publicID": "smi:local/arrival/10000002",
			"waveformID": map[string]any{
				"@networkCode": "XX", "@stationCode": "LAB1", "@channelCode": "HHN",
			},
		},
		{
			"@publicID": "smi:local/arrival/10000003",
			"waveformID": map[string]any{
				"@networkCode": "XX", "@stationCode": "LAB2", "@channelCode": "HHZ",
			},
		},
	}

	assert.Equal(t, 2, quake.StationCount(arrivals, picks, false))
	assert.Equal(t, 1, quake.StationCount(arrivals, picks, true))
}

func TestGetQualityFromArrival(t *testing.T) {
	t.Parallel()

	arrivals := []map[string]any{
		{
			"@publicID":  "smi:local/assoc/00000000-10000001",
			"pickID":     "smi:local/arrival/10000001",
			"azimuth":    20.2,
			"distance":   1.2,
			"timeWeight": 1.0,
		},
		{
			"@publicID":  "smi:local/assoc/00000000-10000002",
			"pickID":     "smi:local/arrival/10000002",
			"azimuth":    20.2,
			"distance":   1.2,
			"timeWeight": 1.0,
		},
		{
			"@publicID":  "smi:local/assoc/00000000-10000003",
			"pickID":     "smi:local/arrival/10000003",
			"azimuth":    30.2,
			"distance":   2.3,
			"timeWeight": 0.0,
		},
		{
			"@publicID":  "smi:local/assoc/00000000-10000004",
			"pickID":     "smi:local/arrival/10000004",
			"azimuth":    90.3,
			"distance":   0.3,
			"timeWeight": 1.0,
		},
	}

	qual := quake.GetQualityFromArrival(arrivals)
	assert.Equal(t, int64(3), qual["associatedStationCount"])
	assert.Equal(t, int64(2), qual["usedStationCount"])
	assert.Equal(t, 0.3, qual["minimumDistance"])
	assert.Equal(t, 2.3, qual["maximumDistance"])
	assert.Equal(t, 289.9, qual["azimuthalGap"])
}

func TestGetQualityFromArrivalEmpty(t *testing.T) {
	t.Parallel()

	qual := quake.GetQualityFromArrival(nil)
	assert.Equal(t, int64(0), qual["associatedStationCount"])
	assert.Equal(t, int64(0), qual["usedStationCount"])
	assert.NotContains(t, qual, "minimumDistance")
	assert.NotContains(t, qual, "azimuthalGap")
}

func TestRoot(t *testing.T) {
	t.Parallel()

	root := quake.NewRoot()
	assert.Equal(t, "local", root.RID.AuthorityID)
	assert.Equal(t, "smi:local/foo#bar", root.RID.URI("foo", "bar"))

	ep := root.EventParameters(map[string]any{
		"origin":         []any{},
		"focalMechanism": []any{},
		"badelement":     []any{},
	})
	assert.Contains(t, ep, "origin")
	assert.Contains(t, ep, "focalMechanism")
	assert.NotContains(t, ep, "pick")
	assert.NotContains(t, ep, "badelement")

	pid, _ := ep["@publicID"].(string)
	assert.True(t, strings.HasPrefix(pid, "smi:local/catalog/"))

	cinfo, ok := ep["creationInfo"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, cinfo["creationTime"])
	assert.NotEmpty(t, cinfo["version"])
	assert.Equal(t, "XX", cinfo["agencyID"])

	qr := root.QML([]any{}, "edu.unr.seismo")
	qm, ok := qr["q:quakeml"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, qm, "eventParameters")
	assert.Equal(t, "edu.unr.seismo", qm["@xmlns"])
	assert.Equal(t, quake.NamespaceQuakeML, qm["@xmlns:q"])
	assert.Equal(t, quake.NamespaceCatalog, qm["@xmlns:catalog"])

	defaulted := root.QML([]any{}, "")
	assert.Equal(t, quake.NamespaceBED, defaulted["q:quakeml"].(map[string]any)["@xmlns"])
}
