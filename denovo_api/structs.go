package denovo_api

// The struct representing the header of the input VCF file in a parseable format
type Header struct {
	// Object containing the INFO fields with their ID, Number, Type and Description
	// The ID is the key of the map
	Info map[string]HeaderLineIdNumberTypeDescription
}

// A struct representing a header line in the VCF file with its ID, Number, Type and Description
type HeaderLineIdNumberTypeDescription struct {
	// The ID of the header line
	Id string

	// The number of values in the header line
	// Can be any integer, "A", "G", "R" or "."
	Number string

	// The type of the header line
	// Can be "Integer", "Float", "Flag", "String" or "Character"
	Type string

	// The description of the header line
	Description string
}

// The identity of a variant record, taken verbatim from the first five columns
type VariantIdentity struct {
	// The chromosome of the variant
	Chromosome string

	// The 1-based position of the variant
	Pos int64

	// The ID of the variant
	Id string

	// The reference allele of the variant
	Ref string

	// The comma separated alternate alleles of the variant
	Alt string
}

// Column position of every tracked sample in a variant record
type SampleIndex map[string]int

// Position of every FORMAT tag in a colon delimited sample value
type FormatIndex map[string]int

// The genotypes of all tracked samples for one variant
type GenotypeSnapshot struct {
	// The raw GT value of each tracked sample
	Genotypes map[string]string

	// True when at least one tracked sample has a missing allele
	Missing bool

	// The sample:genotype pairs responsible for Missing
	MissingSamples []string
}

// The ploidy a child is evaluated with at a variant
type Ploidy int

const (
	Diploid Ploidy = iota
	// Male child on chrX outside the PARs, only the mother is consulted
	HaploidMother
	// Male child on chrY outside the PARs, only the father is consulted
	HaploidFather
)

func (p Ploidy) String() string {
	switch p {
	case HaploidMother:
		return "haploid-mother"
	case HaploidFather:
		return "haploid-father"
	default:
		return "diploid"
	}
}

// The genotypes of one trio at one variant
type TrioGenotypes struct {
	Child  string
	Father string
	Mother string
}

// The resolved inheritance of a child at a variant
type TrioContext struct {
	// The ploidy the trio was evaluated with
	Ploidy Ploidy

	// True when the variant overlaps a pseudoautosomal region
	Pseudoautosomal bool

	// The allele index absent from the parent(s)
	DeNovo int

	// The allele index shared with a parent
	Inherited int
}

// Why a trio could not be resolved at a variant
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonInconsistentPloidy  Reason = "haploid context with more than one allele"
	ReasonBadAllele           Reason = "allele is not an integer"
	ReasonNoDeNovo            Reason = "no de novo allele"
	ReasonAmbiguous           Reason = "no unique de novo and inherited allele"
	ReasonMissingParentAllele Reason = "parent genotype has a missing allele"
)

// A numeric value that may be unavailable
type Measure struct {
	Value float64
	Valid bool
}

// A half-open 0-based interval
type Interval [2]int64

//
// Config structs
//

// The struct representing the configuration file
// The config file is a YAML file
type Config struct {
	// The genome build used for the default pseudoautosomal regions
	// Can be "hg38" or "hg19"
	Build string

	// The pseudoautosomal regions of each sex chromosome
	// Each chromosome holds two half-open 0-based [start, end] pairs
	Pseudoautosomal map[string][][]int64

	// The INFO fields to export as annotation columns
	Info []string
}
