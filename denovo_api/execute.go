package denovo_api

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
)

// The command line options of a run
type Options struct {
	// The input VCF, bgzipped when it ends with .gz
	Input string

	// The PED file describing the trios
	Pedigree string

	// The output TSV, stdout when empty
	Output string

	// An optional Arrow IPC copy of the output
	Arrow string

	// The number of rows per Arrow record batch
	ArrowChunkSize int

	// Emit diagnostics for every skipped variant and trio
	Verbose bool

	// Only emit errors
	MuteWarnings bool

	// Where diagnostics are written, stderr when nil
	Log io.Writer
}

// Collect the options from the command line
func NewOptions(Cctx *cli.Context) Options {
	return Options{
		Input:          Cctx.String("input"),
		Pedigree:       Cctx.String("ped"),
		Output:         Cctx.String("output"),
		Arrow:          Cctx.String("arrow"),
		ArrowChunkSize: Cctx.Int("arrow-chunk-size"),
		Verbose:        Cctx.Bool("verbose"),
		MuteWarnings:   Cctx.Bool("mute-warnings"),
	}
}

// Read the pedigree and the VCF file and write the features of every de novo call
func Execute(Cctx *cli.Context, config *Config) error {
	options := NewOptions(Cctx)
	pedigree, err := ReadPedigree(options.Pedigree)
	if err != nil {
		return err
	}
	return Run(options, config, pedigree)
}

// Stream the input VCF once and write one row per child with a de novo allele
func Run(options Options, config *Config, pedigree *Pedigree) (err error) {
	if options.Log == nil {
		options.Log = os.Stderr
	}

	columns := newFeature(config).Columns()
	tsv, err := NewTsvWriter(options.Output, columns)
	if err != nil {
		return err
	}
	writers := multiWriter{tsv}
	defer func() {
		if closeErr := writers.Close(); err == nil {
			err = closeErr
		}
	}()

	if options.Arrow != "" {
		arrowWriter, err := NewArrowWriter(options.Arrow, newFeature(config).numericColumns(), options.ArrowChunkSize)
		if err != nil {
			return err
		}
		writers = append(writers, arrowWriter)
	}

	c := &caller{
		config:   config,
		pedigree: pedigree,
		header:   newHeader(),
		writer:   writers,
		logger:   newLogger(options.Log, options.Verbose, options.MuteWarnings),
		verbose:  options.Verbose,
	}
	return readLines(options.Input, c.parseLine)
}

// The state kept across the records of one VCF file
type caller struct {
	config   *Config
	pedigree *Pedigree
	header   *Header
	samples  SampleIndex
	writer   RowWriter
	logger   *logrus.Logger
	verbose  bool
}

// Process one line of the VCF file
func (c *caller) parseLine(line string) error {
	if strings.HasPrefix(line, "#CHROM") {
		samples, err := indexSamples(line, c.pedigree)
		if err != nil {
			return err
		}
		c.samples = samples
		return nil
	}
	if strings.HasPrefix(line, "#") {
		c.header.parse(line)
		return nil
	}

	record, err := tokenize(line)
	if err != nil {
		c.logger.WithError(err).Debug("skipping line")
		return nil
	}
	return c.processRecord(record)
}

// Evaluate every trio at one variant record
func (c *caller) processRecord(record []string) error {
	variant, err := newVariantIdentity(record)
	if err != nil {
		c.logger.WithError(err).Warn("skipping record")
		return nil
	}

	format := indexFormat(record[formatIdx])
	snapshot := loadGenotypes(record, c.samples, format)

	if !isSexChromosome(variant.Chromosome) && snapshot.Missing {
		if c.verbose {
			c.logger.WithFields(logrus.Fields{
				"variant": variant.String(),
				"samples": strings.Join(snapshot.MissingSamples, ","),
			}).Warn("missing genotypes")
		}
		return nil
	}

	for _, child := range c.pedigree.Offspring() {
		row := c.evaluateTrio(child, variant, record, format, snapshot)
		if row == nil {
			continue
		}
		if err := c.writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Look up the genotype of a sample, warning when it is absent
func (c *caller) genotype(snapshot *GenotypeSnapshot, sample string, variant VariantIdentity) (string, bool) {
	gt, ok := snapshot.Genotypes[sample]
	if !ok {
		c.logger.WithFields(logrus.Fields{
			"variant": variant.String(),
			"iid":     sample,
		}).Warn("missing genotype entry")
	}
	return gt, ok
}

// The sample column of a record, empty when the record is too short
func (c *caller) entry(record []string, sample string) string {
	column, ok := c.samples[sample]
	if !ok || column >= len(record) {
		return ""
	}
	return record[column]
}

// The values measured in one sample
type sampleValues struct {
	alleleRatio    Measure
	coverageRatio  Measure
	quality        Measure
	ownLikelihood  Measure
	pairLikelihood Measure
}

func (v sampleValues) usable() bool {
	return v.alleleRatio.usable() &&
		v.coverageRatio.usable() &&
		v.quality.usable() &&
		v.ownLikelihood.usable() &&
		v.pairLikelihood.usable()
}

// Measure a sample at the resolved alleles. ownGt is the genotype of the sample,
// pairGt the genotype its likelihood is contrasted with.
func measure(entry string, format FormatIndex, ctx TrioContext, ownGt string, pairGt string) sampleValues {
	ar, dp := alleleDepth(entry, format, ctx.DeNovo, ctx.Inherited)
	return sampleValues{
		alleleRatio:    ar,
		coverageRatio:  dp,
		quality:        genotypeQuality(entry, format),
		ownLikelihood:  phredLikelihood(entry, format, ownGt),
		pairLikelihood: phredLikelihood(entry, format, pairGt),
	}
}

// Resolve and measure one trio at one variant, nil when the trio is skipped
func (c *caller) evaluateTrio(child string, variant VariantIdentity, record []string, format FormatIndex, snapshot *GenotypeSnapshot) *Row {
	sex := c.pedigree.Sex(child)
	if sex == SexFemale && strings.HasSuffix(variant.Chromosome, "Y") {
		return nil
	}
	if _, ok := c.samples[child]; !ok {
		return nil
	}

	father, mother := c.pedigree.Parents(child)
	childGt, childOk := c.genotype(snapshot, child, variant)
	fatherGt, fatherOk := c.genotype(snapshot, father, variant)
	motherGt, motherOk := c.genotype(snapshot, mother, variant)
	if !childOk || !fatherOk || !motherOk {
		return nil
	}
	gts := TrioGenotypes{Child: childGt, Father: fatherGt, Mother: motherGt}

	log := c.logger.WithFields(logrus.Fields{
		"variant": variant.String(),
		"iid":     child,
	})

	ploidy, pseudoautosomal := classifyPloidy(sex, variant, c.config)
	ctx, reason := resolveTrio(gts, ploidy, pseudoautosomal)
	if reason != ReasonNone {
		log.WithField("ploidy", ploidy.String()).Debugf("unresolved: %s", reason)
		return nil
	}

	feature := newFeature(c.config)
	feature.parse(record, c.header)
	if feature.NAlt > 1 {
		log.Debug("skipping multiallelic variant")
		return nil
	}

	for _, tag := range []struct{ id, name string }{
		{"AD", "allele depth"},
		{"GQ", "genotype quality"},
		{"PL", "Phred-adjusted genotype likelihoods"},
	} {
		if _, ok := format[tag.id]; !ok {
			if c.verbose {
				log.Warnf("missing %s %s", tag.name, tag.id)
			}
			return nil
		}
	}

	if ploidy == Diploid && (strings.Contains(childGt, missingValue) ||
		strings.Contains(fatherGt, missingValue) ||
		strings.Contains(motherGt, missingValue)) {
		log.Debug("missing allele in diploid trio")
		return nil
	}

	// The parents consulted for this ploidy with their genotypes
	parents := [][2]string{{father, fatherGt}, {mother, motherGt}}
	switch ploidy {
	case HaploidMother:
		parents = [][2]string{{mother, motherGt}}
	case HaploidFather:
		parents = [][2]string{{father, fatherGt}}
	}

	childEntry := c.entry(record, child)
	offspring := measure(childEntry, format, ctx, childGt, childGt)
	if !offspring.usable() {
		log.Debug("unavailable offspring values")
		return nil
	}

	parentValues := []sampleValues{}
	parentLikelihoods := []float64{}
	for _, parent := range parents {
		values := measure(c.entry(record, parent[0]), format, ctx, parent[1], childGt)
		if !values.usable() {
			log.WithField("parent", parent[0]).Debug("unavailable parent values")
			return nil
		}
		parentValues = append(parentValues, values)

		childInParent := phredLikelihood(childEntry, format, parent[1])
		if !childInParent.usable() {
			log.WithField("parent", parent[0]).Debug("unavailable offspring likelihood of parental genotype")
			return nil
		}
		parentLikelihoods = append(parentLikelihoods, childInParent.Value)
	}

	// A single parent is used twice
	first, last := parentValues[0], parentValues[len(parentValues)-1]

	feature.PArMax, feature.PArMin = maxMin(first.alleleRatio.Value, last.alleleRatio.Value)
	feature.OAr = offspring.alleleRatio.Value
	feature.PDpMax, feature.PDpMin = maxMin(first.coverageRatio.Value, last.coverageRatio.Value)
	feature.ODp = offspring.coverageRatio.Value
	feature.PGqMax, feature.PGqMin = maxMin(first.quality.Value, last.quality.Value)
	feature.OGq = offspring.quality.Value
	feature.POgMax, feature.POgMin = maxMin(first.pairLikelihood.Value, last.pairLikelihood.Value)
	feature.PPgMax, feature.PPgMin = maxMin(first.ownLikelihood.Value, last.ownLikelihood.Value)
	feature.Og = offspring.ownLikelihood.Value
	feature.OPg = median(parentLikelihoods)

	return &Row{
		Variant:   variant,
		Child:     child,
		Genotypes: gts,
		Feature:   feature,
	}
}
