package vector

import (
	"encoding/json"
	"testing"
)

func Test_NewElement(t *testing.T) {
	e, err := NewElement("promoter", "taatacg", Promoter, "lowercase input")
	if err != nil {
		t.Fatal(err)
	}
	if e.Seq != "TAATACG" {
		t.Errorf("Seq = %s, want TAATACG", e.Seq)
	}

	if _, err := NewElement("bad", "ATGX", Gene, ""); err == nil {
		t.Error("expected an error for a non-DNA character")
	}
	if _, err := NewElement("empty", "", Gene, ""); err == nil {
		t.Error("expected an error for an empty sequence")
	}
}

func Test_Category_JSON(t *testing.T) {
	b, err := json.Marshal(PolyA)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"polya"` {
		t.Errorf("marshal = %s, want \"polya\"", b)
	}

	var c Category
	if err := json.Unmarshal([]byte(`"translation-start"`), &c); err != nil {
		t.Fatal(err)
	}
	if c != TranslationStart {
		t.Errorf("unmarshal = %s, want translation-start", c)
	}

	if err := json.Unmarshal([]byte(`"nonsense"`), &c); err == nil {
		t.Error("expected an error for an unknown category name")
	}
}
