package vector

import (
	"errors"
	"sort"
	"testing"
)

func Test_Lookup(t *testing.T) {
	e, err := Lookup("t7_promoter")
	if err != nil {
		t.Fatal(err)
	}
	if e.Seq != "TAATACGACTCACTATAGGG" {
		t.Errorf("t7_promoter seq = %s", e.Seq)
	}
	if e.Category != Promoter {
		t.Errorf("t7_promoter category = %s, want promoter", e.Category)
	}

	// mutating the returned element must not touch the catalog
	e.Position = 99
	e.Seq = "AAAA"
	again, _ := Lookup("t7_promoter")
	if again.Position != 0 || again.Seq != "TAATACGACTCACTATAGGG" {
		t.Error("Lookup returned a shared element, not a copy")
	}

	var unknown *UnknownElementError
	if _, err := Lookup("nonexistent"); !errors.As(err, &unknown) {
		t.Errorf("Lookup miss = %v, want UnknownElementError", err)
	}
}

func Test_LibraryNames(t *testing.T) {
	names := LibraryNames()
	if !sort.StringsAreSorted(names) {
		t.Error("LibraryNames() not sorted")
	}

	want := []string{
		"agl_5utr", "amp_resistance", "bgh_polya", "cmv_promoter",
		"cole1_origin", "ef1a_promoter", "flag_tag", "gs_linker",
		"his_tag", "kozak_sequence", "start_codon", "stop_codon",
		"t7_promoter", "tpa_signal",
	}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func Test_libraryIntegrity(t *testing.T) {
	for name, e := range library {
		if err := checkDNA(e.Seq); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if e.Name == "" || e.Description == "" {
			t.Errorf("%s: missing name or description", name)
		}
	}
}
