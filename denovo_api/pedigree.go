package denovo_api

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
)

// PED sex codes
const (
	SexUnknown = "0"
	SexMale    = "1"
	SexFemale  = "2"
)

// A struct representing an individual in a PED file
type Individual struct {
	Family string
	Id     string
	Father string
	Mother string
	Sex    string
}

// The families of a PED file
type Pedigree struct {
	individuals map[string]Individual

	// Offspring with both parents in the pedigree, in file order
	offspring []string
}

// Read a PED file: family, individual, father, mother, sex and an optional phenotype
func ReadPedigree(path string) (*Pedigree, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the pedigree file: %w", err)
	}
	defer file.Close()

	individuals := []Individual{}
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			return nil, fmt.Errorf("pedigree line %d: expected at least 5 columns, got %d", lineNumber, len(fields))
		}
		individuals = append(individuals, Individual{
			Family: fields[0],
			Id:     fields[1],
			Father: fields[2],
			Mother: fields[3],
			Sex:    normalizeSex(fields[4]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read the pedigree file: %w", err)
	}
	return NewPedigree(individuals...), nil
}

// Build a pedigree from individuals, later duplicates replace earlier ones
func NewPedigree(individuals ...Individual) *Pedigree {
	pedigree := &Pedigree{
		individuals: map[string]Individual{},
		offspring:   []string{},
	}
	order := []string{}
	for _, individual := range individuals {
		if _, ok := pedigree.individuals[individual.Id]; !ok {
			order = append(order, individual.Id)
		}
		pedigree.individuals[individual.Id] = individual
	}
	for _, id := range order {
		if pedigree.IsOffspring(id) {
			pedigree.offspring = append(pedigree.offspring, id)
		}
	}
	return pedigree
}

// True when id is an individual of the pedigree
func (pedigree *Pedigree) Known(id string) bool {
	if id == "" || id == "0" {
		return false
	}
	_, ok := pedigree.individuals[id]
	return ok
}

// The sex code of id
func (pedigree *Pedigree) Sex(id string) string {
	return pedigree.individuals[id].Sex
}

// True when both parents of id are in the pedigree
func (pedigree *Pedigree) IsOffspring(id string) bool {
	return pedigree.Known(id) &&
		pedigree.Known(pedigree.individuals[id].Father) &&
		pedigree.Known(pedigree.individuals[id].Mother)
}

// The father and mother of id
func (pedigree *Pedigree) Parents(id string) (string, string) {
	individual := pedigree.individuals[id]
	return individual.Father, individual.Mother
}

// All offspring in file order
func (pedigree *Pedigree) Offspring() []string {
	return pedigree.offspring
}

// Convert the sex column of a PED file to its code
func normalizeSex(sex string) string {
	switch cases.Fold().String(strings.TrimSpace(sex)) {
	case "1", "m", "male":
		return SexMale
	case "2", "f", "female":
		return SexFemale
	}
	return SexUnknown
}
