package denovo_api

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenotypeLikelihoodIndex(t *testing.T) {
	tests := []struct {
		gt    string
		index int
		ok    bool
	}{
		{"0/0", 0, true},
		{"0/1", 1, true},
		{"1/1", 2, true},
		{"1/0", 1, true},
		{"0|2", 3, true},
		{"1/2", 4, true},
		{"2/2", 5, true},
		{"1", -1, false},
		{"./.", -1, false},
		{"0/1/1", -1, false},
	}
	for _, test := range tests {
		index, ok := genotypeLikelihoodIndex(test.gt)
		assert.Equal(t, test.ok, ok, test.gt)
		assert.Equal(t, test.index, index, test.gt)
	}
}

func TestGenotypeLikelihoodIndexFormula(t *testing.T) {
	for a1 := 0; a1 < 6; a1++ {
		for a2 := a1; a2 < 6; a2++ {
			index, ok := genotypeLikelihoodIndex(strconv.Itoa(a1) + "/" + strconv.Itoa(a2))
			require.True(t, ok)
			assert.Equal(t, a2*(a2+1)/2+a1, index)
		}
	}
}

func TestIntersectRange(t *testing.T) {
	assert.Equal(t, int64(50), intersectRange(Interval{99, 150}, Interval{100, 200}))
	assert.Equal(t, int64(0), intersectRange(Interval{0, 10}, Interval{20, 30}))
	assert.Equal(t, int64(0), intersectRange(Interval{0, 10}, Interval{10, 30}))
	assert.Equal(t, int64(1), intersectRange(Interval{99, 100}, Interval{0, 1000}))
}

func TestClassifyPloidy(t *testing.T) {
	config, err := LoadConfig("", "hg38")
	require.NoError(t, err)

	tests := []struct {
		name            string
		sex             string
		variant         VariantIdentity
		ploidy          Ploidy
		pseudoautosomal bool
	}{
		{"autosome male", SexMale, VariantIdentity{Chromosome: "chr1", Pos: 5000000, Ref: "A"}, Diploid, false},
		{"X male outside PAR", SexMale, VariantIdentity{Chromosome: "chrX", Pos: 5000000, Ref: "A"}, HaploidMother, false},
		{"X without prefix", SexMale, VariantIdentity{Chromosome: "X", Pos: 5000000, Ref: "A"}, HaploidMother, false},
		{"Y male outside PAR", SexMale, VariantIdentity{Chromosome: "chrY", Pos: 8000000, Ref: "G"}, HaploidFather, false},
		{"X male in PAR1", SexMale, VariantIdentity{Chromosome: "chrX", Pos: 100000, Ref: "T"}, Diploid, true},
		{"X male in PAR2", SexMale, VariantIdentity{Chromosome: "chrX", Pos: 155800000, Ref: "T"}, Diploid, true},
		{"X male PAR1 last base", SexMale, VariantIdentity{Chromosome: "chrX", Pos: 2781479, Ref: "T"}, Diploid, true},
		{"X male after PAR1", SexMale, VariantIdentity{Chromosome: "chrX", Pos: 2781480, Ref: "T"}, HaploidMother, false},
		{"X female", SexFemale, VariantIdentity{Chromosome: "chrX", Pos: 5000000, Ref: "A"}, Diploid, false},
		{"X unknown sex", SexUnknown, VariantIdentity{Chromosome: "chrX", Pos: 5000000, Ref: "A"}, Diploid, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ploidy, pseudoautosomal := classifyPloidy(test.sex, test.variant, config)
			assert.Equal(t, test.ploidy, ploidy)
			assert.Equal(t, test.pseudoautosomal, pseudoautosomal)
		})
	}
}

func TestResolveTrio(t *testing.T) {
	tests := []struct {
		name      string
		gts       TrioGenotypes
		ploidy    Ploidy
		reason    Reason
		deNovo    int
		inherited int
	}{
		{"diploid de novo", TrioGenotypes{"0/1", "0/0", "0/0"}, Diploid, ReasonNone, 1, 0},
		{"diploid phased", TrioGenotypes{"1|0", "0/0", "0|0"}, Diploid, ReasonNone, 1, 0},
		{"diploid inherited from mother", TrioGenotypes{"1/2", "1/1", "0/0"}, Diploid, ReasonNone, 2, 1},
		{"diploid inherited", TrioGenotypes{"0/1", "0/1", "0/0"}, Diploid, ReasonNoDeNovo, 0, 0},
		{"diploid homozygous de novo", TrioGenotypes{"1/1", "0/0", "0/0"}, Diploid, ReasonAmbiguous, 0, 0},
		{"diploid reference", TrioGenotypes{"0/0", "0/0", "0/0"}, Diploid, ReasonNoDeNovo, 0, 0},
		{"diploid half missing", TrioGenotypes{"./1", "0/0", "0/0"}, Diploid, ReasonAmbiguous, 0, 0},
		{"diploid haploid call", TrioGenotypes{"1", "0/0", "0/0"}, Diploid, ReasonAmbiguous, 0, 0},
		{"diploid bad allele", TrioGenotypes{"0/A", "0/0", "0/0"}, Diploid, ReasonBadAllele, 0, 0},
		{"haploid mother", TrioGenotypes{"1", "1/1", "0/0"}, HaploidMother, ReasonNone, 1, 0},
		{"haploid mother diploid call", TrioGenotypes{"1/1", "./.", "0/0"}, HaploidMother, ReasonNone, 1, 0},
		{"haploid father", TrioGenotypes{"1/1", "0/0", "1/1"}, HaploidFather, ReasonNone, 1, 0},
		{"haploid heterozygous", TrioGenotypes{"0/1", "0/0", "0/0"}, HaploidMother, ReasonInconsistentPloidy, 0, 0},
		{"haploid inherited", TrioGenotypes{"1", "0/0", "0/1"}, HaploidMother, ReasonNoDeNovo, 0, 0},
		{"haploid missing parent allele", TrioGenotypes{"1", "0/0", "./0"}, HaploidMother, ReasonMissingParentAllele, 0, 0},
		{"haploid ambiguous parent", TrioGenotypes{"1", "0/0", "0/2"}, HaploidMother, ReasonAmbiguous, 0, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx, reason := resolveTrio(test.gts, test.ploidy, false)
			require.Equal(t, test.reason, reason)
			assert.Equal(t, test.ploidy, ctx.Ploidy)
			if reason == ReasonNone {
				assert.Equal(t, test.deNovo, ctx.DeNovo)
				assert.Equal(t, test.inherited, ctx.Inherited)
			}
		})
	}
}

func TestResolveTrioHaploidX(t *testing.T) {
	config, err := LoadConfig("", "")
	require.NoError(t, err)

	variant := VariantIdentity{Chromosome: "chrX", Pos: 5000000, Ref: "A", Alt: "C"}
	ploidy, pseudoautosomal := classifyPloidy(SexMale, variant, config)
	ctx, reason := resolveTrio(TrioGenotypes{Child: "1", Father: "0/0", Mother: "0/0"}, ploidy, pseudoautosomal)

	require.Equal(t, ReasonNone, reason)
	assert.Equal(t, TrioContext{Ploidy: HaploidMother, DeNovo: 1, Inherited: 0}, ctx)
}
