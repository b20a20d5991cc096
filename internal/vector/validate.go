package vector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stephenmesser/mrna-prototype/config"
	"github.com/stephenmesser/mrna-prototype/internal/codon"
)

// restrictionSites are enzyme recognition sequences that complicate
// downstream cloning if present in a synthesized construct
var restrictionSites = map[string]string{
	"EcoRI":   "GAATTC",
	"BamHI":   "GGATCC",
	"HindIII": "AAGCTT",
	"XhoI":    "CTCGAG",
	"NotI":    "GCGGCCGC",
	"KpnI":    "GGTACC",
}

// chiSite is a recombination hotspot in E. coli
const chiSite = "GCTGGTGG"

// Report is the result of running the structural check battery
// against an assembled vector
type Report struct {
	// per-check name -> passed
	Checks map[string]bool `json:"checks"`

	// hard failures
	Issues []string `json:"issues"`

	// advisory findings that don't fail validation on their own
	Warnings []string `json:"warnings"`

	// whole-vector GC fraction (%)
	GCContent float64 `json:"gc_content"`

	// motif hits found by the safety scan
	MotifHits []string `json:"motif_hits,omitempty"`

	// true when every hard check passed
	Passed bool `json:"passed"`
}

// Validate runs the fixed battery of structural checks against an
// assembled vector. It never mutates the vector; running it twice on
// the same construct yields identical reports.
func Validate(v *Vector, conf *config.DesignConfig) Report {
	r := Report{Checks: map[string]bool{}}

	full := v.FullSequence()

	// presence checks, existence-of-category only
	r.check("has_promoter", v.CountCategory(Promoter) > 0, &r.Issues, "no promoter element")
	r.check("has_coding_sequence", v.CountCategory(Gene) > 0, &r.Issues, "no coding sequence element")
	r.check("has_terminator", v.CountCategory(Terminator)+v.CountCategory(PolyA) > 0, &r.Issues, "no terminator or polyadenylation element")
	r.check("has_selection_marker", v.CountCategory(Resistance) > 0, &r.Issues, "no selection marker element")
	r.check("has_origin", v.CountCategory(Origin) > 0, &r.Issues, "no origin of replication element")

	// element lengths must sum to the recorded total
	sum := 0
	for i := range v.Elements {
		sum += v.Elements[i].Length()
	}
	r.check("sequence_integrity", sum == v.TotalLength && len(full) == v.TotalLength,
		&r.Issues, fmt.Sprintf("element lengths sum to %d but total length is %d", sum, v.TotalLength))

	// start/stop codons anywhere in the construct
	r.check("has_start_codon", strings.Contains(full, "ATG"), &r.Issues, "missing start codon (ATG)")
	hasStop := strings.Contains(full, "TAA") || strings.Contains(full, "TAG") || strings.Contains(full, "TGA")
	r.check("has_stop_codon", hasStop, &r.Issues, "missing stop codon")

	// reading frame: coding-category element lengths must triple up
	codingLen := 0
	for i := range v.Elements {
		if v.Elements[i].Category.coding() {
			codingLen += v.Elements[i].Length()
		}
	}
	r.check("orf_in_frame", codingLen%3 == 0, &r.Issues,
		fmt.Sprintf("coding region length %d is not divisible by 3", codingLen))

	// total length window
	inWindow := v.TotalLength >= conf.MinTotalLength && v.TotalLength <= conf.MaxTotalLength
	r.check("length_in_range", inWindow, &r.Issues,
		fmt.Sprintf("total length %d bp outside %d-%d bp", v.TotalLength, conf.MinTotalLength, conf.MaxTotalLength))

	// GC window is advisory only
	r.GCContent = gcPercent(full)
	gcOK := r.GCContent >= conf.MinGCContent && r.GCContent <= conf.MaxGCContent
	r.Checks["gc_content_acceptable"] = gcOK
	if !gcOK {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("GC content %.1f%% outside %.0f-%.0f%%", r.GCContent, conf.MinGCContent, conf.MaxGCContent))
	}

	// motif safety scan; hits are advisories unless configured fatal
	r.MotifHits = scanMotifs(v, conf)
	r.Checks["motif_safety"] = len(r.MotifHits) == 0
	if len(r.MotifHits) > 0 {
		msg := "problematic motifs found: " + strings.Join(r.MotifHits, ", ")
		if conf.MotifsAreFatal {
			r.Issues = append(r.Issues, msg)
		} else {
			r.Warnings = append(r.Warnings, msg)
		}
	}

	r.Passed = len(r.Issues) == 0
	return r
}

// check records a named boolean check, filing a message when it fails
func (r *Report) check(name string, ok bool, sink *[]string, msg string) {
	r.Checks[name] = ok
	if !ok {
		*sink = append(*sink, msg)
	}
}

// gcPercent is the G+C fraction of a sequence, as a percentage
func gcPercent(seq string) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}

// scanMotifs looks for homopolymer runs, recombination hotspots,
// restriction sites and rare-codon overuse in the full sequence
func scanMotifs(v *Vector, conf *config.DesignConfig) []string {
	full := v.FullSequence()
	var hits []string

	if strings.Contains(full, "AAAAAA") {
		hits = append(hits, "poly-A run >= 6")
	}
	if strings.Contains(full, "TTTTTT") {
		hits = append(hits, "poly-T run >= 6")
	}
	if hasGCRun(full, 8) {
		hits = append(hits, "G/C run >= 8")
	}
	if strings.Contains(full, chiSite) {
		hits = append(hits, fmt.Sprintf("chi site (%s)", chiSite))
	}

	var enzymes []string
	for enzyme, site := range restrictionSites {
		if strings.Contains(full, site) {
			enzymes = append(enzymes, fmt.Sprintf("%s (%s)", enzyme, site))
		}
	}
	sort.Strings(enzymes)
	hits = append(hits, enzymes...)

	hits = append(hits, rareCodonHits(v, conf)...)

	return hits
}

// hasGCRun reports whether the sequence holds n or more consecutive
// G/C bases
func hasGCRun(seq string, n int) bool {
	run := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// rareCodonHits counts in-frame occurrences of each rare codon over
// the coding elements and flags any that repeat beyond the limit
func rareCodonHits(v *Vector, conf *config.DesignConfig) []string {
	rare := map[string]bool{}
	for _, c := range codon.RareCodons(conf.RareCodonCutoff) {
		rare[c] = true
	}

	counts := map[string]int{}
	for i := range v.Elements {
		if !v.Elements[i].Category.coding() {
			continue
		}
		seq := v.Elements[i].Seq
		for j := 0; j+3 <= len(seq); j += 3 {
			c := seq[j : j+3]
			if rare[c] {
				counts[c]++
			}
		}
	}

	var flagged []string
	for c, n := range counts {
		if n > conf.MaxRareCodonRepeats {
			flagged = append(flagged, fmt.Sprintf("rare codon %s repeated %dx", c, n))
		}
	}
	sort.Strings(flagged)
	return flagged
}
