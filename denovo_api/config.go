package denovo_api

import (
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"
)

// Supported genome builds for the default pseudoautosomal regions
var Builds = []string{"hg38", "hg19"}

var defaultPseudoautosomal = map[string]map[string][][]int64{
	"hg38": {
		"chrX": {{10000, 2781479}, {155701382, 156030895}},
		"chrY": {{10000, 2781479}, {56887902, 57217415}},
	},
	"hg19": {
		"chrX": {{60000, 2699520}, {154931043, 155260560}},
		"chrY": {{10000, 2649520}, {59034049, 59373566}},
	},
}

var defaultInfo = []string{
	"BaseQRankSum",
	"ClippingRankSum",
	"DP",
	"FS",
	"MQ",
	"MQRankSum",
	"QD",
	"ReadPosRankSum",
	"SOR",
	"VQSLOD",
}

// Read the configuration file given on the command line, cast it to its struct and validate
func ReadConfig(Cctx *cli.Context) (*Config, error) {
	return LoadConfig(Cctx.String("config"), Cctx.String("build"))
}

// Load the configuration file at path. An empty path returns the defaults.
// A non-empty build overrides the build in the file.
func LoadConfig(path string, build string) (*Config, error) {
	config := Config{}

	if path != "" {
		configFile, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open the config file: %w", err)
		}
		if err := yaml.Unmarshal(configFile, &config); err != nil {
			return nil, fmt.Errorf("failed to parse the config file: %w", err)
		}
	}

	if build != "" {
		config.Build = build
	}

	if err := config.defineMissing(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Define all missing fields and normalise the chromosome names
func (config *Config) defineMissing() error {
	if config.Build == "" {
		config.Build = "hg38"
	}
	defaults, ok := defaultPseudoautosomal[config.Build]
	if !ok {
		return fmt.Errorf("unsupported build '%s', must be one of: %s", config.Build, strings.Join(Builds, ", "))
	}

	regions := map[string][][]int64{}
	for chrom, intervals := range config.Pseudoautosomal {
		regions[normalizeChromosome(chrom)] = intervals
	}
	for chrom, intervals := range defaults {
		if _, ok := regions[chrom]; !ok {
			regions[chrom] = intervals
		}
	}
	for chrom, intervals := range regions {
		if len(intervals) != 2 {
			return fmt.Errorf("pseudoautosomal regions of %s: expected 2 intervals, got %d", chrom, len(intervals))
		}
		for _, interval := range intervals {
			if len(interval) != 2 || interval[0] > interval[1] {
				return fmt.Errorf("pseudoautosomal regions of %s: invalid interval %v", chrom, interval)
			}
		}
	}
	config.Pseudoautosomal = regions

	if len(config.Info) == 0 {
		config.Info = append([]string{}, defaultInfo...)
	}
	return nil
}

// The two pseudoautosomal intervals of chrom, nil when none are configured
func (config *Config) regions(chrom string) []Interval {
	intervals := config.Pseudoautosomal[normalizeChromosome(chrom)]
	out := make([]Interval, 0, len(intervals))
	for _, interval := range intervals {
		out = append(out, Interval{interval[0], interval[1]})
	}
	return out
}
