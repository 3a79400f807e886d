package denovo_api

import (
	"math"
	"strings"
)

// Offset added to the inherited depth and the median depth to avoid zero divisions
const depthOffset = 1.0

// The allele ratio and the log2 coverage ratio of a sample
//
//	ratio    = AD[dnm] / (AD[par] + 1)
//	coverage = log2((AD[dnm] + AD[par]) / (median(AD) + 1))
func alleleDepth(entry string, format FormatIndex, dnm int, par int) (Measure, Measure) {
	field, ok := format.value(entry, "AD")
	if !ok {
		return none, none
	}
	depths := strings.Split(field, ",")
	deNovoDepth := lookup(depths, dnm)
	inheritedDepth := lookup(depths, par)
	if !deNovoDepth.usable() || !inheritedDepth.usable() {
		return none, none
	}

	ratio := some(deNovoDepth.Value / (inheritedDepth.Value + depthOffset))

	available := []float64{}
	for _, depth := range depths {
		if m := stringToMeasure(depth); m.Valid {
			available = append(available, m.Value)
		}
	}
	med := median(available)
	if math.IsNaN(med) || math.IsInf(med, 0) {
		return ratio, none
	}
	return ratio, some(math.Log2((deNovoDepth.Value + inheritedDepth.Value) / (med + depthOffset)))
}

// The GQ value of a sample
func genotypeQuality(entry string, format FormatIndex) Measure {
	field, ok := format.value(entry, "GQ")
	if !ok {
		return none
	}
	return stringToMeasure(field)
}

// The PL value of a sample for the genotype gt
func phredLikelihood(entry string, format FormatIndex, gt string) Measure {
	idx, ok := genotypeLikelihoodIndex(gt)
	if !ok {
		return none
	}
	field, ok := format.value(entry, "PL")
	if !ok {
		return none
	}
	return lookup(strings.Split(field, ","), idx)
}

func lookup(values []string, idx int) Measure {
	if idx < 0 || idx >= len(values) {
		return none
	}
	return stringToMeasure(values[idx])
}
