package denovo_api

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Column positions of the fixed VCF fields
const (
	chromIdx  = 0
	posIdx    = 1
	idIdx     = 2
	refIdx    = 3
	altIdx    = 4
	qualIdx   = 5
	filterIdx = 6
	infoIdx   = 7
	formatIdx = 8
	sampleIdx = 9
)

// The character marking an unknown allele or value
const missingValue = "."

var (
	ErrEmptyLine     = errors.New("empty line")
	ErrTooFewColumns = errors.New("fewer than 9 columns")
)

// Split a VCF line into its tab delimited fields
func tokenize(line string) ([]string, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, ErrEmptyLine
	}
	fields := strings.Split(line, "\t")
	if len(fields) < sampleIdx {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewColumns, len(fields))
	}
	return fields, nil
}

// Record the column of every sample in the #CHROM line that the pedigree knows
func indexSamples(line string, pedigree *Pedigree) (SampleIndex, error) {
	fields, err := tokenize(line)
	if err != nil {
		return nil, fmt.Errorf("unable to tokenize header %q: %w", strings.TrimSpace(line), err)
	}
	samples := SampleIndex{}
	for i := sampleIdx; i < len(fields); i++ {
		if !pedigree.Known(fields[i]) {
			continue
		}
		samples[fields[i]] = i
	}
	return samples, nil
}

// The tracked samples ordered by their column
func (samples SampleIndex) ordered() []string {
	ids := make([]string, 0, len(samples))
	for id := range samples {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return samples[ids[i]] < samples[ids[j]] })
	return ids
}

// Determine the position of every FORMAT tag
func indexFormat(format string) FormatIndex {
	index := FormatIndex{}
	for i, tag := range strings.Split(format, ":") {
		index[tag] = i
	}
	return index
}

// The value of tag in a colon delimited sample entry
func (format FormatIndex) value(entry string, tag string) (string, bool) {
	idx, ok := format[tag]
	if !ok {
		return "", false
	}
	values := strings.Split(entry, ":")
	if idx >= len(values) {
		return "", false
	}
	return values[idx], true
}

// Store the genotypes of all tracked samples and flag missing calls
func loadGenotypes(record []string, samples SampleIndex, format FormatIndex) *GenotypeSnapshot {
	snapshot := &GenotypeSnapshot{
		Genotypes:      map[string]string{},
		MissingSamples: []string{},
	}
	for _, sample := range samples.ordered() {
		column := samples[sample]
		if column >= len(record) {
			continue
		}
		gt, ok := format.value(record[column], "GT")
		if !ok {
			continue
		}
		snapshot.Genotypes[sample] = gt
		if strings.Contains(gt, missingValue) {
			snapshot.Missing = true
			snapshot.MissingSamples = append(snapshot.MissingSamples, fmt.Sprintf("%s:%s", sample, gt))
		}
	}
	return snapshot
}

// Parse the first five columns of a record
func newVariantIdentity(record []string) (VariantIdentity, error) {
	pos, err := strconv.ParseInt(record[posIdx], 10, 64)
	if err != nil {
		return VariantIdentity{}, fmt.Errorf("invalid position %q: %w", record[posIdx], err)
	}
	return VariantIdentity{
		Chromosome: record[chromIdx],
		Pos:        pos,
		Id:         record[idIdx],
		Ref:        record[refIdx],
		Alt:        record[altIdx],
	}, nil
}

func (v VariantIdentity) String() string {
	return fmt.Sprintf("%s:%d:%s:%s:%s", v.Chromosome, v.Pos, v.Id, v.Ref, v.Alt)
}

// The 0-based half-open range covered by the reference allele
func (v VariantIdentity) interval() Interval {
	return Interval{v.Pos - 1, v.Pos + int64(len(v.Ref)) - 1}
}

// The chromosome name with a chr prefix
func normalizeChromosome(chrom string) string {
	if strings.HasPrefix(chrom, "chr") {
		return chrom
	}
	return "chr" + chrom
}

// True for X, Y, chrX and chrY
func isSexChromosome(chrom string) bool {
	switch chrom {
	case "chrX", "X", "chrY", "Y":
		return true
	}
	return false
}

// Split a genotype into its alleles, phased or not
func splitGenotype(gt string) []string {
	return strings.Split(strings.ReplaceAll(gt, "|", "/"), "/")
}
