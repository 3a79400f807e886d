package denovo_api

import (
	"slices"
	"strconv"
	"strings"
)

// The index of a genotype in the canonical ordering of the PL field
// F(j/k) = k*(k+1)/2 + j with j <= k
// Only genotypes with exactly two integer alleles can be indexed
func genotypeLikelihoodIndex(gt string) (int, bool) {
	alleles := splitGenotype(gt)
	if len(alleles) != 2 {
		return -1, false
	}
	a1, err := strconv.Atoi(alleles[0])
	if err != nil || a1 < 0 {
		return -1, false
	}
	a2, err := strconv.Atoi(alleles[1])
	if err != nil || a2 < 0 {
		return -1, false
	}
	if a2 < a1 {
		a1, a2 = a2, a1
	}
	return a2*(a2+1)/2 + a1, true
}

// The size of the intersection of two half-open ranges
func intersectRange(x Interval, y Interval) int64 {
	size := min(x[1], y[1]) - max(x[0], y[0])
	if size < 0 {
		return 0
	}
	return size
}

// Determine the ploidy a child of the given sex has at the variant
// and whether the variant lies in a pseudoautosomal region
func classifyPloidy(sex string, variant VariantIdentity, config *Config) (Ploidy, bool) {
	chrom := normalizeChromosome(variant.Chromosome)
	if chrom != "chrX" && chrom != "chrY" {
		return Diploid, false
	}

	pseudoautosomal := false
	for _, region := range config.regions(chrom) {
		if intersectRange(variant.interval(), region) > 0 {
			pseudoautosomal = true
		}
	}

	if sex != SexMale || pseudoautosomal {
		return Diploid, pseudoautosomal
	}
	if chrom == "chrX" {
		return HaploidMother, false
	}
	return HaploidFather, false
}

// Find the de novo and inherited allele of the child
func resolveTrio(gts TrioGenotypes, ploidy Ploidy, pseudoautosomal bool) (TrioContext, Reason) {
	ctx := TrioContext{Ploidy: ploidy, Pseudoautosomal: pseudoautosomal}
	alleles := splitGenotype(gts.Child)

	if ploidy != Diploid && len(distinct(alleles)) > 1 {
		return ctx, ReasonInconsistentPloidy
	}

	if ploidy == Diploid {
		fatherAlleles := splitGenotype(gts.Father)
		motherAlleles := splitGenotype(gts.Mother)
		deNovo := []int{}
		inherited := []int{}
		for _, a := range alleles {
			if strings.Contains(a, missingValue) {
				continue
			}
			allele, err := strconv.Atoi(a)
			if err != nil {
				return ctx, ReasonBadAllele
			}
			if !slices.Contains(fatherAlleles, a) && !slices.Contains(motherAlleles, a) {
				deNovo = append(deNovo, allele)
			} else {
				inherited = append(inherited, allele)
			}
		}
		if len(deNovo) == 0 {
			return ctx, ReasonNoDeNovo
		}
		if len(deNovo) != 1 || len(inherited) != 1 {
			return ctx, ReasonAmbiguous
		}
		ctx.DeNovo, ctx.Inherited = deNovo[0], inherited[0]
		return ctx, ReasonNone
	}

	parent := gts.Mother
	if ploidy == HaploidFather {
		parent = gts.Father
	}
	parentAlleles := splitGenotype(parent)

	deNovo := -1
	for _, a := range distinct(alleles) {
		if strings.Contains(a, missingValue) || slices.Contains(parentAlleles, a) {
			continue
		}
		allele, err := strconv.Atoi(a)
		if err != nil {
			return ctx, ReasonBadAllele
		}
		deNovo = allele
	}
	if deNovo == -1 {
		return ctx, ReasonNoDeNovo
	}

	// The parent genotype is taken as written, a diploid call on a haploid
	// chromosome contributes both of its alleles
	if strings.Contains(parent, missingValue) {
		return ctx, ReasonMissingParentAllele
	}
	inherited := []int{}
	for _, a := range distinct(parentAlleles) {
		if slices.Contains(alleles, a) {
			continue
		}
		allele, err := strconv.Atoi(a)
		if err != nil {
			return ctx, ReasonBadAllele
		}
		inherited = append(inherited, allele)
	}
	if len(inherited) != 1 {
		return ctx, ReasonAmbiguous
	}
	ctx.DeNovo, ctx.Inherited = deNovo, inherited[0]
	return ctx, ReasonNone
}

// The unique values of input in order of first appearance
func distinct(input []string) []string {
	out := []string{}
	for _, value := range input {
		if !slices.Contains(out, value) {
			out = append(out, value)
		}
	}
	return out
}
