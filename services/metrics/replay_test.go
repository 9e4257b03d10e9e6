package metrics

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestReplay(t *testing.T) {
	dir, err := ioutil.TempDir("", "replay")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// 每行一个JSON文档，第二行是batch数组
	content := `{"namespace":"oci_vcn","name":"VnicFromNetworkMirrorBytes","metadata":{"displayName":"Mirrored Bytes from Network","unit":"bytes"},"datapoints":[{"timestamp":1652196912000,"value":42.5,"count":1}]}
[{"namespace":"oci_lbaas","name":"ActiveConnections","datapoints":[{"timestamp":1652196912000,"value":7,"count":1}]}]
`
	filename := filepath.Join(dir, "metrics.json")
	if err := ioutil.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// main_test里转发是关闭的，replay只做转换不发网络请求
	if err := Replay(filename); err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}
}

func TestReplayMissingFile(t *testing.T) {
	if err := Replay("/nonexistent/metrics.json"); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestReplayMalformedLine(t *testing.T) {
	dir, err := ioutil.TempDir("", "replay")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "bad.json")
	if err := ioutil.WriteFile(filename, []byte("{\"namespace\":\"oci_vcn\"}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// datapoints缺失
	if err := Replay(filename); err == nil {
		t.Fatal("batch without datapoints must fail")
	}
}
