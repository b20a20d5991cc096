package vector

import (
	"fmt"
	"sort"
)

// UnknownElementError is returned on a library lookup miss
type UnknownElementError struct {
	// the requested symbolic name
	Name string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("element %q not found in library", e.Name)
}

// library is the catalog of stock regulatory elements, keyed by
// symbolic name. It is static configuration data: never mutated,
// safe to share.
var library = map[string]Element{
	"t7_promoter": {
		Name:        "T7 Promoter",
		Seq:         "TAATACGACTCACTATAGGG",
		Category:    Promoter,
		Description: "T7 RNA polymerase promoter for in vitro transcription",
	},
	"cmv_promoter": {
		Name:        "CMV Promoter",
		Seq:         "GTTGACATTGATTATTGACTAGTTATTAATAGTAATCAATTACGGGGTCATTAGTTCATAGCCCATATATGGAGTTCCGCGTTACATAACTTACGGTAAATGGCCCGCCTGGCTGACCGCCCAACGACCCCCGCCCATTGACGTCAATAATGACGTATGTTCCCATAGTAACGCCAATAGGGACTTTCCATTGACGTCAATGGGTGGAGTATTTACGGTAAACTGCCCACTTGGCAGTACATCAAGTGTATCATATGCCAAGTACGCCCCCTATTGACGTCAATGACGGTAAATGGCCCGCCTGGCATTATGCCCAGTACATGACCTTATGGGACTTTCCTACTTGGCAGTACATCTACGTATTAGTCATCGCTATTACCATGGTGATGCGGTTTTGGCAGTACATCAATGGGCGTGGATAGCGGTTTGACTCACGGGGATTTCCAAGTCTCCACCCCATTGACGTCAATGGGAGTTTGTTTTGGCACCAAAATCAACGGGACTTTCCAAAATGTCGTAACAACTCCGCCCCATTGACGCAAATGGGCGGTAGGCGTGTACGGTGGGAGGTCTATATAAGCAGAGCTCGTTTAGTGAACCGTCAGATCGCCTGGAGACGCCATCCACGCTGTTTTGACCTCCATAGAAGACACCGGGACCGATCCAGCCTCCGCGGCCGGGAACGGTGCATTGGAACGCGGATTCCCCGTGCCAAGAGTGACGTAAGTACCGCCTATAGAGTCTATAGGCCCACCCCCTTGGCTTCGAGGAA",
		Category:    Promoter,
		Description: "Strong CMV immediate early promoter for high expression",
	},
	"ef1a_promoter": {
		Name:        "EF1a Core Promoter",
		Seq:         "GGCTCCGGTGCCCGTCAGTGGGCAGAGCGCACATCGCCCACAGTCCCCGAGAAGTTGGGGGGAGGGGTCGGCAATTGAACCGGTGCCTAGAGAAGGTGGCGCGGGGTAAACTGGGAAAGTGATGTCGTGTACTGGCTCCGCCTTTTTCCCGAGGGTGGGGGAGAACCGTATATAAGTGCAGTAGTCGCCGTGAACGTTCTTTTTCGCAACGGGTTTGCCGCCAGAACACAG",
		Category:    Promoter,
		Description: "Human EF-1 alpha core promoter for constitutive expression",
	},
	"kozak_sequence": {
		Name:        "Kozak Sequence",
		Seq:         "GCCACC",
		Category:    Enhancer,
		Description: "Kozak consensus sequence for enhanced translation initiation",
	},
	"agl_5utr": {
		Name:        "Alpha-globin 5' UTR",
		Seq:         "ACTCTTCTGGTCCCCACAGACTCAGAGAGAACCCACC",
		Category:    UTR,
		Description: "Human alpha-globin 5' UTR for translation efficiency",
	},
	"tpa_signal": {
		Name:        "tPA Signal Peptide",
		Seq:         "ATGGGCAGCCTGGTGCTGGTGGCCGCCCTG",
		Category:    Signal,
		Description: "Tissue plasminogen activator signal peptide for secretion",
	},
	"flag_tag": {
		Name:        "FLAG Tag",
		Seq:         "GACTACAAAGACCATGACGGTGATTATAAAGATCATGACATCGATTACAAGGATGACGATGACAAG",
		Category:    Tag,
		Description: "FLAG epitope tag for detection and purification",
	},
	"his_tag": {
		Name:        "6xHis Tag",
		Seq:         "CATCATCATCATCATCAT",
		Category:    Tag,
		Description: "Hexahistidine tag for protein purification",
	},
	"gs_linker": {
		Name:        "GGS Linker",
		Seq:         "GGCGGCAGCGGCGGCAGCGGCGGCAGC",
		Category:    Regulatory,
		Description: "Flexible glycine-serine linker between fusion partners",
	},
	"bgh_polya": {
		Name:        "BGH polyA",
		Seq:         "CTCGAGACATGATAAGATACATTGATGAGTTTGGACAAACCACAACTAGAATGCAGTGAAAAAAATGCTTTATTTGTGAAATTTGTGATGCTATTGCTTTATTTGTAACCATTATAAGCTGCAATAAACAAGTTAACAACAACAATTGCATTCATTTTATGTTTCAGGTTCAGGGGGAGATGTGGGAGGTTTTTTAAAGCAAGTAAAACCTCTACAAATGTGGTAAAATCGATAAG",
		Category:    PolyA,
		Description: "BGH polyadenylation signal for mRNA stability",
	},
	"cole1_origin": {
		Name:        "ColE1 Origin",
		Seq:         "TTTCCATAGGCTCCGCCCCCCTGACGAGCATCACAAAAATCGACGCTCAAGTCAGAGGTGGCGAAACCCGACAGGACTATAAAGATACCAGGCGTTTCCCCCTGGAAGCTCCCTCGTGCGCTCTCCTGTTCCGACCCTGCCGCTTACCGGATACCTGTCCGCCTTTCTCCCTTCGGGAAGCGTGGCGCTTTCTCATAGCTCACGCTGTAGGTATCTCAGTTCGGTGTAGGTCGTTCGCTCCAAGCTGGGCTGTGTGCACGAACCCCCCGTTCAGCCCGACCGCTGCGCCTTATCCGGTAACTATCGTCTTGAGTCCAACCCGGTAAGACACGACTTATCGCCACTGGCAGCAGCCACTGGTAACAGGATTAGCAGAGCGAGGTATGTAGGCGGTGCTACAGAGTTCTTGAAGTGGTGGCCTAACTACGGCTACACTAGAAGAACAGTATTTGGTATCTGCGCTCTGCTGAAGCCAGTTACCTTCGGAAAAAGAGTTGGTAGCTCTTGATCCGGCAAACAAACCACCGCTGGTAGCGGTGGTTTTTTTGTTTGCAAGCAGCAGATTACGCGCAGAAAAAAAGGATCTCAAGAAGATCCTTTGATCTTTTCTACGG",
		Category:    Origin,
		Description: "ColE1 origin of replication for high-copy plasmid maintenance",
	},
	"amp_resistance": {
		Name:        "Ampicillin Resistance",
		Seq:         "ATGAGTATTCAACATTTCCGTGTCGCCCTTATTCCCTTTTTTGCGGCATTTTGCCTTCCTGTTTTTGCTCACCCAGAAACGCTGGTGAAAGTAAAAGATGCTGAAGATCAGTTGGGTGCACGAGTGGGTTACATCGAACTGGATCTCAACAGCGGTAAGATCCTTGAGAGTTTTCGCCCCGAAGAACGTTTTCCAATGATGAGCACTTTTAAAGTTCTGCTATGTGGCGCGGTATTATCCCGTATTGACGCCGGGCAAGAGCAACTCGGTCGCCGCATACACTATTCTCAGAATGACTTGGTTGAGTACTCACCAGTCACAGAAAAGCATCTTACGGATGGCATGACAGTAAGAGAATTATGCAGTGCTGCCATAACCATGAGTGATAACACTGCGGCCAACTTACTTCTGACAACGATCGGAGGACCGAAGGAGCTAACCGCTTTTTTGCACAACATGGGGGATCATGTAACTCGCCTTGATCGTTGGGAACCGGAGCTGAATGAAGCCATACCAAACGACGAGCGTGACACCACGATGCCTGTAGCAATGGCAACAACGTTGCGCAAACTATTAACTGGCGAACTACTTACTCTAGCTTCCCGGCAACAATTAATAGACTGGATGGAGGCGGATAAAGTTGCAGGACCACTTCTGCGCTCGGCCCTTCCGGCTGGCTGGTTTATTGCTGATAAATCTGGAGCCGGTGAGCGTGGGTCTCGCGGTATCATTGCAGCACTGGGGCCAGATGGTAAGCCCTCCCGTATCGTAGTTATCTACACGACGGGGAGTCAGGCAACTATGGATGAACGAAATAGACAGATCGCTGAGATAGGTGCCTCACTGATTAAGCATTGGTAA",
		Category:    Resistance,
		Description: "Ampicillin resistance gene for selection",
	},
	"start_codon": {
		Name:        "Start Codon",
		Seq:         "ATG",
		Category:    TranslationStart,
		Description: "Translation start codon",
	},
	"stop_codon": {
		Name:        "Stop Codon",
		Seq:         "TAA",
		Category:    TranslationStop,
		Description: "Translation stop codon",
	},
}

// Lookup returns a copy of the named library element. A copy so the
// caller's position bookkeeping never leaks back into the catalog.
func Lookup(name string) (Element, error) {
	e, ok := library[name]
	if !ok {
		return Element{}, &UnknownElementError{Name: name}
	}
	return e, nil
}

// LibraryNames returns the sorted symbolic names of every element in
// the catalog, for CLI help output
func LibraryNames() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
