package metrics

import (
	"reflect"
	"testing"

	apimetrics "metric-forward/api/metrics"
	"metric-forward/conf"
)

func int64p(v int64) *int64       { return &v }
func float64p(v float64) *float64 { return &v }

// 文档示例batch：oci_vcn的VnicFromNetworkMirrorBytes
func testBatch() *apimetrics.Batch {
	return &apimetrics.Batch{
		Namespace:     "oci_vcn",
		CompartmentID: "ocid1.compartment.oc1..aaaa",
		Name:          "VnicFromNetworkMirrorBytes",
		Dimensions: map[string]interface{}{
			"resourceId": "ocid1.vnic.oc1.phx.bbbb",
		},
		Metadata: map[string]interface{}{
			"displayName": "Mirrored Bytes from Network",
			"unit":        "bytes",
		},
		Datapoints: []*apimetrics.Datapoint{
			{Timestamp: int64p(1652196912000), Value: float64p(42.5), Count: 1},
		},
	}
}

func TestBuildTagsDefaultKeys(t *testing.T) {
	transform := &conf.Transform{TagKeys: conf.DefaultTagKeys}
	got := BuildTags(testBatch(), transform.KeyList())
	want := []string{
		"name:VnicFromNetworkMirrorBytes",
		"namespace:oci_vcn",
		"displayName:Mirrored Bytes from Network",
		"unit:bytes",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildTags = %v, want %v", got, want)
	}
}

func TestBuildTagsPrecedence(t *testing.T) {
	batch := testBatch()
	batch.Metadata["name"] = "from-metadata"
	batch.Dimensions["name"] = "from-dimensions"

	got := BuildTags(batch, []string{"name"})
	if !reflect.DeepEqual(got, []string{"name:from-metadata"}) {
		t.Errorf("metadata should win, got %v", got)
	}

	delete(batch.Metadata, "name")
	got = BuildTags(batch, []string{"name"})
	if !reflect.DeepEqual(got, []string{"name:from-dimensions"}) {
		t.Errorf("dimensions should win over top-level, got %v", got)
	}

	delete(batch.Dimensions, "name")
	got = BuildTags(batch, []string{"name"})
	if !reflect.DeepEqual(got, []string{"name:VnicFromNetworkMirrorBytes"}) {
		t.Errorf("top-level name expected, got %v", got)
	}
}

func TestBuildTagsAbsentKeySkipped(t *testing.T) {
	got := BuildTags(testBatch(), []string{"resourceDisplayName", "unit"})
	want := []string{"unit:bytes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("absent key must be skipped, got %v, want %v", got, want)
	}
}

func TestBuildTagsOrderFollowsConfig(t *testing.T) {
	got := BuildTags(testBatch(), []string{"unit", "namespace", "name"})
	want := []string{
		"unit:bytes",
		"namespace:oci_vcn",
		"name:VnicFromNetworkMirrorBytes",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tag order must follow configured key order, got %v", got)
	}
}

func TestBuildTagsColonValueKept(t *testing.T) {
	batch := testBatch()
	batch.Metadata["displayName"] = "ratio: bytes/sec"

	got := BuildTags(batch, []string{"displayName"})
	want := []string{"displayName:ratio: bytes/sec"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("colon values must pass through unescaped, got %v", got)
	}
}

func TestBuildTagsNonStringValues(t *testing.T) {
	batch := testBatch()
	batch.Metadata["samples"] = float64(42)
	batch.Metadata["shape"] = map[string]interface{}{"ocpus": float64(2)}

	got := BuildTags(batch, []string{"samples", "shape"})
	want := []string{
		"samples:42",
		`shape:{"ocpus":2}`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("non-string values must be json-encoded, got %v, want %v", got, want)
	}
}

func TestBuildTagsEmptyValueFallsThrough(t *testing.T) {
	batch := testBatch()
	batch.Metadata["name"] = ""

	// metadata里的空值视为未命中，继续查到顶层字段
	got := BuildTags(batch, []string{"name"})
	want := []string{"name:VnicFromNetworkMirrorBytes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("empty value should fall through, got %v", got)
	}

	batch.Name = ""
	got = BuildTags(batch, []string{"name"})
	if len(got) != 0 {
		t.Errorf("key empty everywhere must emit nothing, got %v", got)
	}
}
