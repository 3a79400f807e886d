package denovo_api

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The annotation and de novo features of one child at one variant
type Feature struct {
	// The FILTER column of the variant
	Filter string

	// The QUAL column of the variant
	Qual Measure

	// The configured INFO fields, in config order
	Info []Measure

	// 1 for insertions and deletions, 0 otherwise
	Indel Measure

	// The number of alternate alleles
	NAlt int

	// Allele ratio of the parents and the offspring
	PArMax, PArMin, OAr float64

	// Log2 coverage ratio of the parents and the offspring
	PDpMax, PDpMin, ODp float64

	// Genotype quality of the parents and the offspring
	PGqMax, PGqMin, OGq float64

	// Likelihood of the offspring genotype in the parents
	POgMax, POgMin float64

	// Likelihood of the parents' own genotypes
	PPgMax, PPgMin float64

	// Likelihood of the offspring's own genotype
	Og float64

	// Likelihood of the parental genotype(s) in the offspring
	OPg float64

	infoKeys []string
}

// Names of the de novo feature columns, in output order
var featureColumns = []string{
	"p_ar_max", "p_ar_min", "o_ar",
	"p_dp_max", "p_dp_min", "o_dp",
	"p_gq_max", "p_gq_min", "o_gq",
	"p_og_max", "p_og_min",
	"p_pg_max", "p_pg_min",
	"og", "o_pg",
}

// Initialize a new Feature for the INFO fields of config
func newFeature(config *Config) *Feature {
	return &Feature{
		Filter:   missingValue,
		Qual:     none,
		Info:     make([]Measure, len(config.Info)),
		Indel:    none,
		infoKeys: config.Info,
	}
}

// Load the annotation fields of a record
func (f *Feature) parse(record []string, header *Header) {
	f.Filter = record[filterIdx]
	f.Qual = stringToMeasure(record[qualIdx])

	alts := strings.Split(record[altIdx], ",")
	f.NAlt = len(alts)
	if len(record[refIdx]) != len(alts[0]) {
		f.Indel = some(1)
	} else {
		f.Indel = some(0)
	}

	info := map[string]string{}
	if record[infoIdx] != missingValue {
		for _, entry := range strings.Split(record[infoIdx], ";") {
			key, value, _ := strings.Cut(entry, "=")
			info[key] = value
		}
	}

	for i, key := range f.infoKeys {
		value, ok := info[key]
		switch {
		case ok && value == "":
			f.Info[i] = some(1)
		case ok:
			f.Info[i] = stringToMeasure(strings.Split(value, ",")[0])
		case header.isFlag(key):
			f.Info[i] = some(0)
		default:
			f.Info[i] = none
		}
	}
}

// The column names of Output
func (f *Feature) Columns() []string {
	return append([]string{"filter"}, f.numericColumns()...)
}

func (f *Feature) numericColumns() []string {
	lower := cases.Lower(language.English)
	columns := []string{"qual"}
	for _, key := range f.infoKeys {
		columns = append(columns, lower.String(key))
	}
	columns = append(columns, "indel", "n_alt")
	return append(columns, featureColumns...)
}

// The values of all numeric columns, NaN when unavailable
func (f *Feature) Numeric() []float64 {
	values := []float64{f.Qual.Value}
	for _, info := range f.Info {
		values = append(values, info.Value)
	}
	return append(values,
		f.Indel.Value, float64(f.NAlt),
		f.PArMax, f.PArMin, f.OAr,
		f.PDpMax, f.PDpMin, f.ODp,
		f.PGqMax, f.PGqMin, f.OGq,
		f.POgMax, f.POgMin,
		f.PPgMax, f.PPgMin,
		f.Og, f.OPg,
	)
}

// The tab delimited row of Columns, unavailable values are written as '.'
func (f *Feature) Output() string {
	row := []string{f.Filter}
	for _, value := range f.Numeric() {
		if math.IsNaN(value) {
			row = append(row, missingValue)
			continue
		}
		row = append(row, floatToString(value))
	}
	return strings.Join(row, "\t")
}
